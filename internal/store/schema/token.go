package schema

import (
	"time"
)

// Token represents the tokens table - ownership and single-token approval of each registered token
type Token struct {
	// TokenID is the sequential token identifier
	TokenID uint64 `gorm:"column:token_id;primaryKey;type:numeric(20,0)"`
	// Owner is the checksummed address of the current owner
	Owner string `gorm:"column:owner;not null;type:text;index:idx_tokens_owner"`
	// Approved is the address approved to move this token (nil when none)
	Approved *string `gorm:"column:approved;type:text"`
	// CreatedAt is the timestamp when the token was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last ownership or approval change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
