package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zubairstack/todoapp/internal/config"
	"github.com/zubairstack/todoapp/internal/features/todos"
	"github.com/zubairstack/todoapp/internal/features/users"
	"github.com/zubairstack/todoapp/internal/pkg/cloudinary"
	"github.com/zubairstack/todoapp/internal/pkg/mailer"
)

// Setup builds every repository, service and handler and mounts the API.
func Setup(router *gin.Engine, db *mongo.Database, cfg *config.Config, log *logrus.Logger) {
	userRepo := users.NewRepository(db)
	todoRepo := todos.NewRepository(db)

	// Optional collaborators: the API stays functional without them, the
	// affected side effects just get skipped and logged.
	var uploads users.Uploader
	if svc, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder); err != nil {
		log.WithError(err).Warn("cloudinary disabled")
	} else {
		uploads = svc
	}

	var mail users.WelcomeMailer
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		mail = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailSender)
	} else {
		log.Warn("mailgun disabled: welcome emails will not be sent")
	}

	authRequired := users.AuthRequired(userRepo, cfg.JWTSecret)

	userHandler := users.NewHandler(userRepo, uploads, mail, todoRepo, cfg, log)
	todoHandler := todos.NewHandler(todoRepo, log)

	api := router.Group("/api")
	users.RegisterRoutes(api, userHandler, authRequired)
	todos.RegisterRoutes(api, todoHandler, authRequired)
}
