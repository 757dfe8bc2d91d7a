package main

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/infrastructure/communication"
	"pulsehr.com/pulsehr/infrastructure/devops"
	"pulsehr.com/pulsehr/web/handlers"
	"pulsehr.com/pulsehr/web/middlewares"
)

func main() {
	r := gin.Default()

	cfg, err := devops.LoadServiceConfig(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	db := core.ConnectDB(cfg.DSN)
	if err := core.Migrate(db); err != nil {
		log.Fatal(err)
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	slack := communication.ConnectSlack()
	sink := &core.AuditSink{DB: db}
	if slack != nil {
		sink.Report = func(msg string) {
			if err := slack.Error(msg); err != nil {
				log.Printf("slack notify failed: %v", err)
			}
		}
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		handlers.RegisterAttendance(protected, db, sink)
		handlers.RegisterHeartbeats(protected, db)
		handlers.RegisterPayroll(protected, db, sink, slack)
	}

	r.Run("0.0.0.0:8090")
}
