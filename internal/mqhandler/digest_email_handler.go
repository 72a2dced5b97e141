package mqhandler

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"lingua/internal/mq"
	"lingua/pkg/metrics"
)

// Sender delivers one finished email.
type Sender interface {
	Send(ctx context.Context, subject, body, recipient string) error
}

// OnceGuard suppresses MQ redeliveries of the same message.
type OnceGuard interface {
	AcquireOnce(ctx context.Context, handler, messageID string) bool
	Release(ctx context.Context, handler, messageID string)
}

type DigestEmailHandler struct {
	sender Sender
	guard  OnceGuard
	logger *zap.Logger
}

func NewDigestEmailHandler(sender Sender, guard OnceGuard, logger *zap.Logger) *DigestEmailHandler {
	return &DigestEmailHandler{
		sender: sender,
		guard:  guard,
		logger: logger,
	}
}

// HandleDigestEmailRequested delivers a queued digest email over SMTP.
// The queue is at-least-once, so the guard drops redeliveries of a
// message ID already handled; a failed send returns the error and the
// message is requeued.
func (h *DigestEmailHandler) HandleDigestEmailRequested(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()

	var p mq.DigestEmailRequestedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}

	if !h.guard.AcquireOnce(ctx, "digest_email", p.MessageID) {
		h.logger.Info("Duplicate delivery skipped",
			zap.String("message_id", p.MessageID),
			zap.String("recipient", p.Recipient),
		)
		return nil
	}

	if err := h.sender.Send(ctx, p.Subject, p.Body, p.Recipient); err != nil {
		// Let the requeued copy through again.
		h.guard.Release(ctx, "digest_email", p.MessageID)
		h.logger.Error("Failed to send digest email",
			zap.String("message_id", p.MessageID),
			zap.String("recipient", p.Recipient),
			zap.Error(err),
		)
		return err
	}

	metrics.RecordMQConsumeLatency(mq.DigestEmailRequestedKey, mq.DigestEmailRequestedQueue, time.Since(start))
	h.logger.Info("Digest email sent",
		zap.String("message_id", p.MessageID),
		zap.String("recipient", p.Recipient),
	)
	return nil
}
