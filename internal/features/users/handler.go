package users

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/zubairstack/todoapp/internal/config"
	"github.com/zubairstack/todoapp/internal/pkg/cloudinary"
	"github.com/zubairstack/todoapp/internal/pkg/response"
	"github.com/zubairstack/todoapp/internal/pkg/token"
)

const uploadTimeout = 15 * time.Second

// Uploader uploads profile pictures to the external image host.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (*cloudinary.UploadResult, error)
}

// WelcomeMailer sends the signup welcome email.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, to, username string) error
}

// TodoPurger removes all todos owned by an account. Used by account
// deletion so no orphaned items remain.
type TodoPurger interface {
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type Handler struct {
	store   Store
	uploads Uploader
	mail    WelcomeMailer
	todos   TodoPurger
	cfg     *config.Config
	log     *logrus.Logger
}

func NewHandler(store Store, uploads Uploader, mail WelcomeMailer, todos TodoPurger, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{
		store:   store,
		uploads: uploads,
		mail:    mail,
		todos:   todos,
		cfg:     cfg,
		log:     log,
	}
}

// Signup godoc
// @Summary Register a new account
// @Description Register with username, email and password; optional profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username (3-20 characters)"
// @Param email formData string true "Email address"
// @Param password formData string true "Password (min 6 characters)"
// @Param profile_pic formData file false "Profile picture"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.MessageResponse
// @Failure 409 {object} response.MessageResponse
// @Failure 500 {object} response.ServerErrorResponse
// @Router /users/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	req := SignupRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if err := ValidateSignup(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := h.store.FindConflict(c.Request.Context(), req.Email, req.Username)
	if err != nil {
		h.log.WithError(err).Error("signup conflict check failed")
		response.InternalServerError(c)
		return
	}
	if existing != nil {
		if existing.Email == req.Email {
			response.Conflict(c, "Email already exists.")
		} else {
			response.Conflict(c, "Username already taken.")
		}
		return
	}

	// Upload failure must never fail the registration itself.
	picURL := h.uploadProfilePic(c)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cfg.BcryptCost)
	if err != nil {
		h.log.WithError(err).Error("password hashing failed")
		response.InternalServerError(c)
		return
	}

	user := &User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hashed),
		ProfilePic: picURL,
	}

	if err := h.store.Create(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Conflict(c, "Email already exists.")
		case errors.Is(err, ErrUsernameTaken):
			response.Conflict(c, "Username already taken.")
		default:
			h.log.WithError(err).Error("user insert failed")
			response.InternalServerError(c)
		}
		return
	}

	response.Created(c, gin.H{"message": "User registered successfully."})

	// Best effort, after the response is already on the wire.
	h.sendWelcomeEmail(user.Email, user.Username)
}

// Signin godoc
// @Summary Sign in
// @Description Authenticate with email and password, returns a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 500 {object} response.ServerErrorResponse
// @Router /users/signin [post]
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required.")
		return
	}

	if err := ValidateSignin(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.log.WithError(err).Error("signin lookup failed")
		response.InternalServerError(c)
		return
	}

	// Unknown email and wrong password answer identically so neither leaks.
	if user == nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	signed, err := token.Generate(user.ID.Hex(), user.Email, h.cfg.JWTSecret, time.Duration(h.cfg.JWTExpireHours)*time.Hour)
	if err != nil {
		h.log.WithError(err).Error("token generation failed")
		response.InternalServerError(c)
		return
	}

	response.OK(c, gin.H{"token": signed, "message": "Signin successful."})
}

// Profile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.MessageResponse
// @Router /users/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	user := CurrentUser(c)
	response.OK(c, gin.H{"user": user.PublicProfile()})
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Partial update of username and/or profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param username formData string false "New username"
// @Param profile_pic formData file false "New profile picture"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 409 {object} response.MessageResponse
// @Failure 500 {object} response.ServerErrorResponse
// @Router /users/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)

	set := bson.M{}

	if username := c.PostForm("username"); username != "" {
		if err := ValidateUsername(username); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		set["username"] = username
	}

	if picURL := h.uploadProfilePic(c); picURL != "" {
		set["profile_pic"] = picURL
	}

	if len(set) == 0 {
		response.OK(c, gin.H{"message": "Nothing to update.", "user": user.PublicProfile()})
		return
	}

	updated, err := h.store.Update(c.Request.Context(), user.ID.Hex(), set)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			response.Conflict(c, "Username already taken.")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "User not found")
		default:
			h.log.WithError(err).Error("profile update failed")
			response.InternalServerError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": "Profile updated successfully.", "user": updated.PublicProfile()})
}

// DeleteAccount godoc
// @Summary Delete own account
// @Description Removes the account and all todos it owns
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 500 {object} response.ServerErrorResponse
// @Router /users/account [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	user := CurrentUser(c)
	userID := user.ID.Hex()

	if err := h.store.Delete(c.Request.Context(), userID); err != nil && !errors.Is(err, ErrNotFound) {
		h.log.WithError(err).Error("account delete failed")
		response.InternalServerError(c)
		return
	}

	// Cascade: remove the account's todos so no orphans survive.
	if h.todos != nil {
		if n, err := h.todos.DeleteAllByUser(c.Request.Context(), userID); err != nil {
			h.log.WithError(err).WithField("userId", userID).Error("todo cleanup after account delete failed")
		} else if n > 0 {
			h.log.WithFields(logrus.Fields{"userId": userID, "todos": n}).Info("deleted todos with account")
		}
	}

	response.Message(c, "Account deleted.")
}

// uploadProfilePic uploads the optional profile_pic form file. Any failure
// is logged and swallowed; the caller proceeds without a picture.
func (h *Handler) uploadProfilePic(c *gin.Context) string {
	file, header, err := c.Request.FormFile("profile_pic")
	if err != nil {
		return ""
	}
	defer file.Close()

	if h.uploads == nil {
		h.log.Warn("profile picture skipped: no upload service configured")
		return ""
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		h.log.WithError(err).Warn("profile picture rejected")
		return ""
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()

	result, err := h.uploads.UploadImage(ctx, file, header.Filename)
	if err != nil {
		h.log.WithError(err).Warn("profile picture upload failed")
		return ""
	}

	return result.URL
}

// sendWelcomeEmail fires the welcome email in a detached goroutine.
// Failures are logged only; the signup response is already sent.
func (h *Handler) sendWelcomeEmail(email, username string) {
	if h.mail == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := h.mail.SendWelcome(ctx, email, username); err != nil {
			h.log.WithError(err).WithField("email", email).Warn("welcome email failed")
		}
	}()
}
