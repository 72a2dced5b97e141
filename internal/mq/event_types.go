package mq

import "time"

// Routing keys on the events exchange.
const (
	DigestEmailRequestedKey   = "digest.email.requested"
	DigestEmailRequestedQueue = "digest.email.q"
)

// DigestEmailRequestedPayload asks the delivery worker to send one
// digest email. MessageID is unique per user per run and is what the
// worker dedupes redeliveries on.
type DigestEmailRequestedPayload struct {
	MessageID   string    `json:"message_id"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	RequestedAt time.Time `json:"requested_at"`
}
