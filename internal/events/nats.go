// Package events publishes domain events to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marina-guard-backend/internal/logger"
	"marina-guard-backend/internal/service"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is used when no prefix is configured
const DefaultSubjectPrefix = "marina"

var _ service.EventPublisher = (*NATSPublisher)(nil)

// Conn is the part of *nats.Conn the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

// Envelope wraps every payload sent on the wire
type Envelope struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	RequestID  string      `json:"request_id,omitempty"`
	Payload    interface{} `json:"payload"`
}

// NATSPublisher publishes JSON envelopes on "<prefix>.<event>" subjects
type NATSPublisher struct {
	conn   Conn
	prefix string
	now    func() time.Time
}

// NewNATSPublisher creates a publisher on an existing connection
func NewNATSPublisher(conn Conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{conn: conn, prefix: prefix, now: time.Now}
}

// Connect dials the NATS server and returns a publisher plus its connection
func Connect(url, prefix string) (*NATSPublisher, *nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("marina-guard-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.New().WithError(err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.New().WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return NewNATSPublisher(conn, prefix), conn, nil
}

// Subject returns the subject an event is published on
func (p *NATSPublisher) Subject(event string) string {
	return p.prefix + "." + event
}

// Publish sends the event. Failures are logged and returned; callers treat them as non-fatal.
func (p *NATSPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	log := logger.WithContext(ctx).WithField("event", event)
	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("Skipping event publish, context done")
		return fmt.Errorf("context cancelled before publish: %w", err)
	}

	data, err := json.Marshal(Envelope{
		Event:      event,
		OccurredAt: p.now().UTC(),
		RequestID:  logger.RequestIDFromContext(ctx),
		Payload:    payload,
	})
	if err != nil {
		log.WithError(err).Error("Failed to encode event")
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.conn.Publish(p.Subject(event), data); err != nil {
		log.WithError(err).Warn("Failed to publish event")
		return fmt.Errorf("publish %s: %w", event, err)
	}
	log.Debug("Event published")
	return nil
}
