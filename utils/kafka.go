package utils

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mkelley412/youth-group-backend/config"
)

var checkinWriter *kafka.Writer

// CheckinEvent is the message published when a student checks in or out.
type CheckinEvent struct {
	EventID   uint      `json:"eventId"`
	StudentID uint      `json:"studentId"`
	Action    string    `json:"action"` // "checkin" or "checkout"
	Timestamp time.Time `json:"timestamp"`
}

// InitializeKafka sets up the check-in event writer. Kafka is optional; when
// no brokers are configured the pipeline is simply disabled.
func InitializeKafka(cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("ℹ️ KAFKA_BROKERS not set, check-in event pipeline disabled")
		return
	}

	checkinWriter = &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaCheckinTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 2 * time.Second,
	}
	log.Printf("✅ Kafka writer ready (topic %s)", cfg.KafkaCheckinTopic)
}

// IsKafkaEnabled reports whether the check-in event pipeline is active.
func IsKafkaEnabled() bool {
	return checkinWriter != nil
}

// PublishCheckinEvent emits a check-in/check-out event. Failures are logged
// and swallowed: the pipeline is best-effort and must never fail a check-in.
func PublishCheckinEvent(ctx context.Context, ev CheckinEvent) {
	if checkinWriter == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("⚠️ Failed to marshal check-in event: %v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.EventID), 10)),
		Value: payload,
	}
	if err := checkinWriter.WriteMessages(ctx, msg); err != nil {
		log.Printf("⚠️ Failed to publish check-in event: %v", err)
	}
}

// CloseKafka flushes and closes the writer on shutdown.
func CloseKafka() {
	if checkinWriter != nil {
		_ = checkinWriter.Close()
	}
}
