package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// CreateCollectionInput represents the input for initializing the collection
type CreateCollectionInput struct {
	AdminAddress string
	Name         string
	Symbol       string
	BaseURI      string
	MaxSupply    uint64
}

// AppendTokenURIInput represents one record appended to the packed metadata buffer
type AppendTokenURIInput struct {
	// TokenID is the token the record belongs to
	TokenID uint64
	// Suffix is the encoded record, including its leading separator when the buffer is not empty
	Suffix []byte
	// Start is the offset of the record (excluding the separator) inside the buffer after the append
	Start uint64
	// Length is the record length in bytes
	Length uint64
}

// CreateEventInput represents an ownership event written to the event journal
type CreateEventInput struct {
	EventID   string
	EventType domain.EventType
	TokenID   *uint64
	From      string
	To        string
	Approved  *bool
	Payload   []byte
	CreatedAt time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	CursorStore

	// Transaction runs fn in a transaction. Every change made through tx is rolled back when fn returns an error.
	// Calling Transaction on a transactional store nests (savepoint semantics).
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// GetCollection retrieves the collection without its metadata buffer, nil when not initialized
	GetCollection(ctx context.Context) (*schema.Collection, error)
	// GetCollectionForUpdate is GetCollection holding a write lock on the collection until the transaction ends
	GetCollectionForUpdate(ctx context.Context) (*schema.Collection, error)
	// CreateCollection initializes the collection, domain.ErrAlreadyInitialized when it already exists
	CreateCollection(ctx context.Context, input CreateCollectionInput) error
	// SetNextID stores the identifier assigned to the next mint
	SetNextID(ctx context.Context, nextID uint64) error

	// GetTokenURIs retrieves the whole packed metadata buffer
	GetTokenURIs(ctx context.Context) ([]byte, error)
	// GetTokenURIRecord retrieves the bytes of one record through the offset index
	GetTokenURIRecord(ctx context.Context, tokenID uint64) ([]byte, bool, error)
	// AppendTokenURI appends a record to the metadata buffer and indexes its offset
	AppendTokenURI(ctx context.Context, input AppendTokenURIInput) error

	// CreateToken registers a token to an owner, domain.ErrTokenAlreadyExists when it is already registered
	CreateToken(ctx context.Context, tokenID uint64, owner string) error
	// GetToken retrieves a token, nil when not registered
	GetToken(ctx context.Context, tokenID uint64) (*schema.Token, error)
	// UpdateTokenOwner moves a token to a new owner and clears its approval
	UpdateTokenOwner(ctx context.Context, tokenID uint64, owner string) error
	// SetTokenApproval sets or clears (nil) the approved address of a token
	SetTokenApproval(ctx context.Context, tokenID uint64, approved *string) error
	// CountTokensByOwner counts the tokens owned by an address
	CountTokensByOwner(ctx context.Context, owner string) (uint64, error)
	// SetOperatorApproval grants or revokes an operator for all tokens of an owner
	SetOperatorApproval(ctx context.Context, owner, operator string, approved bool) error
	// IsOperatorApproved checks if an operator is approved for all tokens of an owner
	IsOperatorApproved(ctx context.Context, owner, operator string) (bool, error)

	// CreateEvent appends an event to the event journal and returns its cursor
	CreateEvent(ctx context.Context, input CreateEventInput) (uint64, error)
	// GetEventsAfterCursor retrieves up to limit journal entries with a cursor greater than cursor, oldest first
	GetEventsAfterCursor(ctx context.Context, cursor uint64, limit int) ([]schema.EventJournal, error)
}
