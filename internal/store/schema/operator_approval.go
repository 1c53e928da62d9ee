package schema

import "time"

// OperatorApproval represents the operator_approvals table - owners that allow an operator
// to manage all of their tokens. A row exists only while the approval is granted.
type OperatorApproval struct {
	// Owner is the checksummed address of the token owner
	Owner string `gorm:"column:owner;primaryKey;type:text"`
	// Operator is the checksummed address of the operator
	Operator string `gorm:"column:operator;primaryKey;type:text"`
	// CreatedAt is the timestamp when the approval was granted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OperatorApproval model
func (OperatorApproval) TableName() string {
	return "operator_approvals"
}
