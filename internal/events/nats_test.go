package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marina-guard-backend/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages []published
	err      error
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{subject: subject, data: data})
	return nil
}

func TestPublish(t *testing.T) {
	conn := &fakeConn{}
	publisher := NewNATSPublisher(conn, "harbour")
	publisher.now = func() time.Time { return time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC) }

	ctx := logger.ContextWithRequestID(context.Background(), "req-1")
	err := publisher.Publish(ctx, "incident.created", map[string]string{"log_id": "abc"})
	require.NoError(t, err)

	require.Len(t, conn.messages, 1)
	assert.Equal(t, "harbour.incident.created", conn.messages[0].subject)

	var envelope struct {
		Event      string            `json:"event"`
		OccurredAt time.Time         `json:"occurred_at"`
		RequestID  string            `json:"request_id"`
		Payload    map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(conn.messages[0].data, &envelope))
	assert.Equal(t, "incident.created", envelope.Event)
	assert.Equal(t, "req-1", envelope.RequestID)
	assert.Equal(t, "abc", envelope.Payload["log_id"])
	assert.True(t, envelope.OccurredAt.Equal(publisher.now()))
}

func TestPublishDefaultPrefix(t *testing.T) {
	publisher := NewNATSPublisher(&fakeConn{}, "")
	assert.Equal(t, "marina.message.sent", publisher.Subject("message.sent"))
}

func TestPublishFailures(t *testing.T) {
	t.Run("connection error is returned", func(t *testing.T) {
		publisher := NewNATSPublisher(&fakeConn{err: errors.New("nats: connection closed")}, "marina")

		err := publisher.Publish(context.Background(), "incident.reviewed", nil)
		assert.ErrorContains(t, err, "connection closed")
	})

	t.Run("cancelled context skips publishing", func(t *testing.T) {
		conn := &fakeConn{}
		publisher := NewNATSPublisher(conn, "marina")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := publisher.Publish(ctx, "incident.reviewed", nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, conn.messages)
	})

	t.Run("unencodable payload", func(t *testing.T) {
		conn := &fakeConn{}
		publisher := NewNATSPublisher(conn, "marina")

		err := publisher.Publish(context.Background(), "message.sent", map[string]interface{}{"bad": make(chan int)})
		assert.Error(t, err)
		assert.Empty(t, conn.messages)
	})
}
