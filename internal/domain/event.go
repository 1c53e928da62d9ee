package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EventType represents the type of an ownership event
type EventType string

const (
	// EventTypeTransfer is Transfer(from, to, tokenId); a mint has from set to the zero address
	EventTypeTransfer EventType = "transfer"
	// EventTypeApproval is Approval(owner, approved, tokenId)
	EventTypeApproval EventType = "approval"
	// EventTypeApprovalForAll is ApprovalForAll(owner, operator, approved)
	EventTypeApprovalForAll EventType = "approval_for_all"
)

// IsValidEventType checks if an event type is known
func IsValidEventType(t EventType) bool {
	return t == EventTypeTransfer ||
		t == EventTypeApproval ||
		t == EventTypeApprovalForAll
}

// Event is a normalized ownership event.
// This is the format recorded in the event journal and published to NATS.
//
// Field mapping per type:
//   - transfer: From=from, To=to, TokenID set
//   - approval: From=owner, To=approved, TokenID set
//   - approval_for_all: From=owner, To=operator, Approved set
type Event struct {
	ID        string        `json:"id"`                 // ULID, used as the message de-duplication id
	Sequence  uint64        `json:"sequence"`           // journal cursor, strictly increasing
	Type      EventType     `json:"type"`               // transfer, approval, approval_for_all
	TokenID   *uint64       `json:"token_id,omitempty"` // nil for approval_for_all
	From      string        `json:"from"`               // checksummed address
	To        string        `json:"to"`                 // checksummed address
	Approved  *bool         `json:"approved,omitempty"` // only for approval_for_all
	Data      hexutil.Bytes `json:"data,omitempty"`     // extra payload of a safe transfer
	Timestamp time.Time     `json:"timestamp"`
}

// IsMint reports whether the event is the transfer that created the token
func (e *Event) IsMint() bool {
	return e.Type == EventTypeTransfer && e.From == ZeroAddress.Hex()
}
