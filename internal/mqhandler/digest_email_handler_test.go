package mqhandler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lingua/internal/mq"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(ctx context.Context, subject, body, recipient string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, recipient)
	return nil
}

type fakeGuard struct {
	duplicate bool
	released  []string
}

func (f *fakeGuard) AcquireOnce(ctx context.Context, handler, messageID string) bool {
	return !f.duplicate
}

func (f *fakeGuard) Release(ctx context.Context, handler, messageID string) {
	f.released = append(f.released, messageID)
}

func payload(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(mq.DigestEmailRequestedPayload{
		MessageID:   "run1-ann",
		Recipient:   "ann@example.com",
		Subject:     "New articles for 'cats'",
		Body:        "Hi there,",
		RequestedAt: time.Now(),
	})
	require.NoError(t, err)
	return raw
}

func TestHandlerSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	h := NewDigestEmailHandler(sender, &fakeGuard{}, zap.NewNop())

	err := h.HandleDigestEmailRequested(context.Background(), payload(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"ann@example.com"}, sender.sent)
}

func TestHandlerSkipsDuplicateDelivery(t *testing.T) {
	sender := &fakeSender{}
	h := NewDigestEmailHandler(sender, &fakeGuard{duplicate: true}, zap.NewNop())

	err := h.HandleDigestEmailRequested(context.Background(), payload(t))
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestHandlerReleasesGuardOnSendFailure(t *testing.T) {
	guard := &fakeGuard{}
	h := NewDigestEmailHandler(&fakeSender{err: errors.New("smtp down")}, guard, zap.NewNop())

	err := h.HandleDigestEmailRequested(context.Background(), payload(t))
	require.Error(t, err)
	assert.Equal(t, []string{"run1-ann"}, guard.released)
}

func TestHandlerRejectsMalformedPayload(t *testing.T) {
	h := NewDigestEmailHandler(&fakeSender{}, &fakeGuard{}, zap.NewNop())
	err := h.HandleDigestEmailRequested(context.Background(), json.RawMessage(`{not json`))
	require.Error(t, err)
}
