package schema

import (
	"time"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
)

// COLLECTION_ROW_ID is the primary key of the single collection row
const COLLECTION_ROW_ID = 1

// Collection represents the collection table - a single row holding the admin, descriptors,
// the supply counter and the packed metadata buffer
type Collection struct {
	// ID is always COLLECTION_ROW_ID; the primary key makes a second initialization fail
	ID int16 `gorm:"column:id;primaryKey"`
	// Phase is the explicit lifecycle tag (only "active" rows exist)
	Phase domain.Phase `gorm:"column:phase;not null;type:text"`
	// AdminAddress is the checksummed address of the first caller of initialize
	AdminAddress string `gorm:"column:admin_address;not null;type:text"`
	// Name is the collection name
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the collection symbol
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// BaseURI is the collection base URI
	BaseURI string `gorm:"column:base_uri;not null;type:text"`
	// MaxSupply is the supply cap, 0 means unbounded
	MaxSupply uint64 `gorm:"column:max_supply;not null;type:numeric(20,0)"`
	// NextID is the identifier assigned to the next mint and the number of tokens minted so far
	NextID uint64 `gorm:"column:next_id;not null;type:numeric(20,0);default:0"`
	// TokenURIs is the packed, newline separated metadata buffer
	TokenURIs []byte `gorm:"column:token_uris;not null;type:bytea"`
	// TokenURIsLength is the length of TokenURIs in bytes
	TokenURIsLength uint64 `gorm:"column:token_uris_length;not null;type:numeric(20,0);default:0"`
	// CreatedAt is the timestamp of initialization
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last mint
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collection"
}
