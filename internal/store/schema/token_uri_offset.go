package schema

// TokenURIOffset represents the token_uri_offsets table - position of each token's record
// inside the packed metadata buffer
type TokenURIOffset struct {
	// TokenID is the token identifier
	TokenID uint64 `gorm:"column:token_id;primaryKey;type:numeric(20,0)"`
	// Start is the byte offset of the record inside collection.token_uris
	Start uint64 `gorm:"column:start;not null;type:numeric(20,0)"`
	// Length is the record length in bytes
	Length uint64 `gorm:"column:length;not null;type:numeric(20,0)"`
}

// TableName specifies the table name for the TokenURIOffset model
func (TokenURIOffset) TableName() string {
	return "token_uri_offsets"
}
