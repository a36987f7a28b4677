package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/mkelley412/youth-group-backend/config"
	"github.com/mkelley412/youth-group-backend/utils"
)

// Consumer turns check-in events from Kafka into durable attendance
// records. Check-outs are ignored: attendance means the person showed
// up at all.
type Consumer struct {
	reader  *kafka.Reader
	service *Service
}

func NewConsumer(cfg *config.Config, service *Service) *Consumer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaCheckinTopic,
			GroupID: "attendance-recorder",
		}),
		service: service,
	}
}

// Start consumes until ctx is cancelled. Run it in its own goroutine.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("🔄 Attendance consumer started")
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Println("ℹ️ Attendance consumer stopped")
				return
			}
			log.Printf("⚠️ Attendance consumer read error: %v", err)
			continue
		}

		var ev utils.CheckinEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			log.Printf("⚠️ Skipping malformed check-in event: %v", err)
			continue
		}
		if ev.Action != "checkin" {
			continue
		}

		_, err = c.service.RecordAttendance(ctx, ev.StudentID, ev.EventID, "kafka-consumer")
		switch {
		case err == nil:
			log.Printf("✅ Attendance recorded: person %d at event %d", ev.StudentID, ev.EventID)
		case errors.Is(err, ErrAlreadyRecorded):
			// redelivery or a second check-in the same day
		default:
			log.Printf("⚠️ Failed to record attendance for person %d at event %d: %v",
				ev.StudentID, ev.EventID, err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
