package main

import (
	"context"
	"log"

	"github.com/Mega2255/Debit-shop/config"
	"github.com/Mega2255/Debit-shop/controllers"
	"github.com/Mega2255/Debit-shop/internal/live"
	"github.com/Mega2255/Debit-shop/routes"

	"github.com/cloudinary/cloudinary-go/v2"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Cloudinary init failed:", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	// Live catalog feed. Change streams need a replica set; on a
	// standalone mongod the watcher exits and the SSE endpoint keeps
	// serving the initial snapshot.
	feed := live.NewHub()
	watcher := live.NewWatcher(db.Collection("products"), feed)
	go func() {
		if err := watcher.Run(context.Background()); err != nil {
			log.Println("product feed watcher stopped:", err)
		}
	}()

	ctrl := &controllers.Controller{
		DB:              db,
		Cld:             cld,
		PasetoSecretKey: cfg.PasetoSecretKey,
		WhatsAppNumber:  cfg.WhatsAppNumber,
		ProductFeed:     feed,
	}

	r := routes.Setup(ctrl, cfg.Env)
	log.Fatal(r.Run(":" + cfg.Port))
}
