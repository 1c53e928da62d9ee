package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
)

// EventJournal represents the event_journal table - append-only outbox of ownership events,
// written in the same transaction as the state change they describe
type EventJournal struct {
	// Cursor is an auto-incrementing sequence number for ordering and relay progress
	Cursor uint64 `gorm:"column:cursor;primaryKey;autoIncrement"`
	// EventID is a ULID, unique per event, used as the message de-duplication id
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:text"`
	// EventType is transfer, approval or approval_for_all
	EventType domain.EventType `gorm:"column:event_type;not null;type:text"`
	// TokenID is the affected token (nil for approval_for_all)
	TokenID *uint64 `gorm:"column:token_id;type:numeric(20,0)"`
	// FromAddress is the sender (transfer) or the owner (approvals)
	FromAddress string `gorm:"column:from_address;not null;type:text"`
	// ToAddress is the receiver (transfer), the approved address or the operator
	ToAddress string `gorm:"column:to_address;not null;type:text"`
	// Approved is the operator flag of approval_for_all
	Approved *bool `gorm:"column:approved"`
	// Payload is the canonical JSON of the domain event
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is the timestamp when the event was journaled
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EventJournal model
func (EventJournal) TableName() string {
	return "event_journal"
}
