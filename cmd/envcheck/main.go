// Command envcheck verifies that the environment is wired up before the API
// is started: MongoDB reachable, Cloudinary credentials valid, Mailgun
// configured. It reads the same .env the API does.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/zubairstack/todoapp/internal/config"
	"github.com/zubairstack/todoapp/internal/database"
	"github.com/zubairstack/todoapp/internal/pkg/cloudinary"
)

func main() {
	cfg := config.Load()

	fmt.Println("Testing MongoDB connection...")
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}
	defer db.Disconnect(context.Background())
	fmt.Println("MongoDB connected.")

	fmt.Println("\nTesting Cloudinary configuration...")
	if _, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder); err != nil {
		log.Fatal("Cloudinary initialization failed: ", err)
	}
	fmt.Println("Cloudinary configured.")
	fmt.Printf("  Cloud name:    %s\n", cfg.CloudinaryCloudName)
	fmt.Printf("  Upload folder: %s\n", cfg.CloudinaryUploadFolder)

	fmt.Println("\nTesting Mailgun configuration...")
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		log.Fatal("Mailgun credentials missing in .env")
	}
	mg := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := mg.GetDomain(ctx, cfg.MailgunDomain); err != nil {
		log.Fatal("Mailgun domain lookup failed: ", err)
	}
	fmt.Println("Mailgun configured.")
	fmt.Printf("  Domain: %s\n", cfg.MailgunDomain)
	fmt.Printf("  Sender: %s\n", cfg.MailSender)

	fmt.Println("\nAll systems ready.")
}
