package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkelley412/youth-group-backend/config"
	"github.com/mkelley412/youth-group-backend/database"
	"github.com/mkelley412/youth-group-backend/internal/attendance"
	"github.com/mkelley412/youth-group-backend/internal/auditlog"
	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/person"
	"github.com/mkelley412/youth-group-backend/internal/registration"
	"github.com/mkelley412/youth-group-backend/internal/smallgroup"
	"github.com/mkelley412/youth-group-backend/routes"
	"github.com/mkelley412/youth-group-backend/utils"
)

// @title Youth Group Backend API
// @version 1.0
// @description CRUD backend for youth-group administration across relational, document, and key-value stores.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Optional stores: the app runs without them, related endpoints
	// degrade per store.
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis init failed, live check-ins disabled: %v", err)
	}
	if err := utils.InitFirestore(cfg); err != nil {
		log.Printf("⚠️ Firestore init failed, notes endpoints disabled: %v", err)
	}
	utils.InitializeKafka(cfg)

	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auditlog.AuditLog{},
		&person.Person{},
		&person.Attendee{},
		&person.Leader{},
		&person.Volunteer{},
		&event.Event{},
		&smallgroup.SmallGroup{},
		&smallgroup.SmallGroupMember{},
		&smallgroup.SmallGroupLeader{},
		&registration.Registration{},
		&attendance.AttendanceRecord{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations complete")

	r := gin.Default()
	services := routes.SetupRoutes(r, db, cfg)

	// Kafka check-in consumer feeds the attendance table.
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	consumer := attendance.NewConsumer(cfg, services.Attendance)
	if consumer != nil {
		go consumer.Start(consumerCtx)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🔄 Shutting down...")

	stopConsumer()
	if consumer != nil {
		_ = consumer.Close()
	}
	utils.CloseKafka()
	utils.CloseFirestore()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Forced shutdown: %v", err)
	}
	log.Println("✅ Server stopped")
}
