package recharge

import "time"

type EventType string

const (
	EventEnvelopeIssued EventType = "recharge.envelope_issued"
	EventConfirmed      EventType = "recharge.confirmed"
)

// Event is published after an envelope is issued or a payment is confirmed.
// Key is the reference so one attempt always lands on the same partition.
type Event struct {
	Type          EventType `json:"type"`
	Reference     string    `json:"reference"`
	WorkspaceID   string    `json:"workspace_id"`
	Minutes       int64     `json:"minutes"`
	AmountInCents int64     `json:"amount_in_cents"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transaction_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e Event) Key() string {
	return e.Reference
}

func EnvelopeIssued(env *Envelope, now time.Time) Event {
	return Event{
		Type:          EventEnvelopeIssued,
		Reference:     env.Reference().String(),
		WorkspaceID:   env.WorkspaceID(),
		Minutes:       env.Minutes(),
		AmountInCents: env.AmountInCents(),
		Currency:      env.Currency().String(),
		OccurredAt:    now,
	}
}

func Confirmed(tx ConfirmedPayment, now time.Time) Event {
	return Event{
		Type:          EventConfirmed,
		Reference:     tx.Reference,
		WorkspaceID:   tx.WorkspaceID,
		Minutes:       tx.Minutes,
		AmountInCents: tx.AmountInCents,
		Currency:      tx.Currency,
		TransactionID: tx.TransactionID,
		OccurredAt:    now,
	}
}

type ConfirmedPayment struct {
	TransactionID string
	Reference     string
	WorkspaceID   string
	Minutes       int64
	AmountInCents int64
	Currency      string
}
