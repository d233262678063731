package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"frizer/backend/internal/domain"
)

// KafkaPublisher forwards lifecycle events to Kafka, one topic per
// event type. It is attached to the Bus as a handler, so write
// failures are logged by the bus and never reach the scheduling
// transaction.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  brokers,
			Balancer: &kafka.Hash{},
		}),
	}
}

type eventPayload struct {
	EventID     string             `json:"event_id"`
	EventType   string             `json:"event_type"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Appointment appointmentPayload `json:"appointment"`
}

type appointmentPayload struct {
	ID          string    `json:"id"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	TreatmentID string    `json:"treatment_id"`
	SalonID     string    `json:"salon_id"`
	EmployeeID  string    `json:"employee_id"`
	CustomerID  string    `json:"customer_id"`
	Attended    bool      `json:"attended"`
}

func (p *KafkaPublisher) Handle(ctx context.Context, evt Event) error {
	value, err := json.Marshal(eventPayload{
		EventID:     evt.ID.String(),
		EventType:   string(evt.Type),
		OccurredAt:  evt.OccurredAt,
		Appointment: toAppointmentPayload(evt.Appointment),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: string(evt.Type),
		Key:   []byte(evt.Appointment.ID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(evt.ID.String())},
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toAppointmentPayload(a domain.Appointment) appointmentPayload {
	return appointmentPayload{
		ID:          a.ID.String(),
		DateFrom:    a.DateFrom,
		DateTo:      a.DateTo,
		TreatmentID: a.TreatmentID.String(),
		SalonID:     a.SalonID.String(),
		EmployeeID:  a.EmployeeID.String(),
		CustomerID:  a.CustomerID.String(),
		Attended:    a.Attended,
	}
}

// SplitBrokers parses a comma-separated broker list, dropping empty
// entries.
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
