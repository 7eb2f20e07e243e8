package audit

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event types emitted on the audit topic.
const (
	EventAppointmentBooked     = "appointment.booked"
	EventAppointmentApproved   = "appointment.approved"
	EventAppointmentRejected   = "appointment.rejected"
	EventAppointmentReassigned = "appointment.reassigned"
	EventAppointmentEdited     = "appointment.edited"
	EventAppointmentCancelled  = "appointment.cancelled"
	EventAppointmentCompleted  = "appointment.completed"
)

const publishTimeout = 5 * time.Second

// Event is one audit record. EventID makes consumers idempotent.
type Event struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	AppointmentID int64     `json:"appointment_id"`
	ActorID       int64     `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Logger is the logging interface.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher emits appointment lifecycle events to Kafka. Publishing is
// fire-and-forget: a broker outage never fails the mutation that already
// committed. A nil Publisher is safe to call; audit is an optional
// deployment concern.
type Publisher struct {
	writer *kafka.Writer
	log    Logger
}

// NewPublisher creates a Kafka-backed audit publisher.
func NewPublisher(brokers []string, topic string, log Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
		log: log,
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

// AppointmentBooked emits a booking event.
func (p *Publisher) AppointmentBooked(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentBooked, appointmentID, actorID)
}

// AppointmentApproved emits an approval event.
func (p *Publisher) AppointmentApproved(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentApproved, appointmentID, actorID)
}

// AppointmentRejected emits a rejection event.
func (p *Publisher) AppointmentRejected(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentRejected, appointmentID, actorID)
}

// AppointmentReassigned emits a reassignment event.
func (p *Publisher) AppointmentReassigned(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentReassigned, appointmentID, actorID)
}

// AppointmentEdited emits an edit event.
func (p *Publisher) AppointmentEdited(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentEdited, appointmentID, actorID)
}

// AppointmentCancelled emits a cancellation event.
func (p *Publisher) AppointmentCancelled(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentCancelled, appointmentID, actorID)
}

// AppointmentCompleted emits a completion event. ActorID 0 marks the
// background sweeper.
func (p *Publisher) AppointmentCompleted(ctx context.Context, appointmentID, actorID int64) {
	p.publish(EventAppointmentCompleted, appointmentID, actorID)
}

// publish serializes and writes the event in the background. The caller's
// context is not used: the mutation is already committed and its request
// may be over before the broker acknowledges.
func (p *Publisher) publish(eventType string, appointmentID, actorID int64) {
	if p == nil {
		return
	}

	event := Event{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AppointmentID: appointmentID,
		ActorID:       actorID,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("audit: failed to marshal event %s for appointment id=%d: %v",
			eventType, appointmentID, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		msg := kafka.Message{
			Key:   []byte(strconv.FormatInt(appointmentID, 10)),
			Value: payload,
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.log.Warn("audit: failed to publish %s for appointment id=%d: %v",
				eventType, appointmentID, err)
		}
	}()
}
