package mailer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lingua/internal/mq"
)

// Publisher is what QueueDispatcher needs from the MQ producer.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// QueueDispatcher hands digest emails to the delivery worker via the
// events exchange instead of talking SMTP itself. Each message gets a
// fresh ID, so redelivery of the same message is deduped by the worker
// while a deliberate re-run still goes out.
type QueueDispatcher struct {
	publisher Publisher
}

func NewQueueDispatcher(publisher Publisher) *QueueDispatcher {
	return &QueueDispatcher{publisher: publisher}
}

func (d *QueueDispatcher) Send(ctx context.Context, subject, body, recipient string) error {
	payload := mq.DigestEmailRequestedPayload{
		MessageID:   uuid.NewString(),
		Recipient:   recipient,
		Subject:     subject,
		Body:        body,
		RequestedAt: time.Now(),
	}
	return d.publisher.Publish(mq.DigestEmailRequestedKey, payload)
}
