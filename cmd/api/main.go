package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitaplanServices/appointment-scheduler/internal/config"
	dbpkg "github.com/VitaplanServices/appointment-scheduler/internal/db"
	"github.com/VitaplanServices/appointment-scheduler/internal/middleware"
	"github.com/VitaplanServices/appointment-scheduler/internal/notify"
	"github.com/VitaplanServices/appointment-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	publisher := newPublisher(cfg)
	notifier := notify.NewDispatcher(publisher)
	defer notifier.Close()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newPublisher(cfg *config.Config) notify.Publisher {
	if cfg.NotifyBackend == "sqs" {
		publisher, err := notify.NewSQSPublisher(notify.SQSConfig{
			Region:               cfg.AWSRegion,
			AccessKey:            cfg.AWSAccessKey,
			SecretKey:            cfg.AWSSecretKey,
			NotificationQueueURL: cfg.NotificationQueueURL,
			EmailQueueURL:        cfg.EmailQueueURL,
		})
		if err != nil {
			log.Fatalf("failed to create SQS publisher: %v", err)
		}
		return publisher
	}

	return notify.NewRedisPublisher(cfg.RedisAddr)
}
