package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// collectionColumns are the collection columns loaded by default; the packed buffer is loaded on demand
var collectionColumns = []string{
	"id",
	"phase",
	"admin_address",
	"name",
	"symbol",
	"base_uri",
	"max_supply",
	"next_id",
	"token_uris_length",
	"created_at",
	"updated_at",
}

type pgStore struct {
	CursorStore
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{
		CursorStore: NewCursorStore(db),
		db:          db,
	}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// MaxIdleConns never exceeds MaxOpenConns.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Transaction runs fn inside a database transaction (a savepoint when already in one)
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPGStore(tx))
	})
}

// GetCollection retrieves the collection without its metadata buffer
func (s *pgStore) GetCollection(ctx context.Context) (*schema.Collection, error) {
	return s.getCollection(s.db.WithContext(ctx))
}

// GetCollectionForUpdate retrieves the collection and locks its row until the transaction ends
func (s *pgStore) GetCollectionForUpdate(ctx context.Context) (*schema.Collection, error) {
	return s.getCollection(s.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

func (s *pgStore) getCollection(db *gorm.DB) (*schema.Collection, error) {
	var collection schema.Collection
	err := db.Select(collectionColumns).
		Where("id = ?", schema.COLLECTION_ROW_ID).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return &collection, nil
}

// CreateCollection inserts the collection row; the primary key guarantees a single initialization
func (s *pgStore) CreateCollection(ctx context.Context, input CreateCollectionInput) error {
	collection := schema.Collection{
		ID:           schema.COLLECTION_ROW_ID,
		Phase:        domain.PhaseActive,
		AdminAddress: input.AdminAddress,
		Name:         input.Name,
		Symbol:       input.Symbol,
		BaseURI:      input.BaseURI,
		MaxSupply:    input.MaxSupply,
		TokenURIs:    []byte{},
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&collection)
	if result.Error != nil {
		return fmt.Errorf("failed to create collection: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrAlreadyInitialized
	}

	return nil
}

// SetNextID stores the identifier assigned to the next mint
func (s *pgStore) SetNextID(ctx context.Context, nextID uint64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("id = ?", schema.COLLECTION_ROW_ID).
		Updates(map[string]interface{}{
			"next_id":    nextID,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set next id: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotInitialized
	}

	return nil
}

// GetTokenURIs retrieves the whole packed metadata buffer
func (s *pgStore) GetTokenURIs(ctx context.Context) ([]byte, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).
		Select("token_uris").
		Where("id = ?", schema.COLLECTION_ROW_ID).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("failed to get token uris: %w", err)
	}

	return collection.TokenURIs, nil
}

// GetTokenURIRecord slices one record out of the buffer inside the database using the offset index
func (s *pgStore) GetTokenURIRecord(ctx context.Context, tokenID uint64) ([]byte, bool, error) {
	var rows []struct {
		Record []byte `gorm:"column:record"`
	}

	err := s.db.WithContext(ctx).
		Raw(`SELECT substring(c.token_uris FROM (o.start + 1)::integer FOR o.length::integer) AS record
			FROM token_uri_offsets o
			CROSS JOIN collection c
			WHERE o.token_id = ? AND c.id = ?`, tokenID, schema.COLLECTION_ROW_ID).
		Scan(&rows).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to get token uri record: %w", err)
	}

	if len(rows) == 0 {
		return nil, false, nil
	}

	return rows[0].Record, true, nil
}

// AppendTokenURI appends the encoded record to the buffer server-side and indexes its offset.
// Only the suffix travels to the database, the buffer is never rewritten.
func (s *pgStore) AppendTokenURI(ctx context.Context, input AppendTokenURIInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Collection{}).
			Where("id = ?", schema.COLLECTION_ROW_ID).
			Updates(map[string]interface{}{
				"token_uris":        gorm.Expr("token_uris || ?", input.Suffix),
				"token_uris_length": gorm.Expr("token_uris_length + ?", len(input.Suffix)),
				"updated_at":        gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to append token uri: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotInitialized
		}

		offset := schema.TokenURIOffset{
			TokenID: input.TokenID,
			Start:   input.Start,
			Length:  input.Length,
		}
		if err := tx.Create(&offset).Error; err != nil {
			return fmt.Errorf("failed to create token uri offset: %w", err)
		}

		return nil
	})
}

// CreateToken registers a token to an owner
func (s *pgStore) CreateToken(ctx context.Context, tokenID uint64, owner string) error {
	token := schema.Token{
		TokenID: tokenID,
		Owner:   owner,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_id"}},
			DoNothing: true,
		}).
		Create(&token)
	if result.Error != nil {
		return fmt.Errorf("failed to create token: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrTokenAlreadyExists
	}

	return nil
}

// GetToken retrieves a token by its identifier
func (s *pgStore) GetToken(ctx context.Context, tokenID uint64) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &token, nil
}

// UpdateTokenOwner moves a token to a new owner and clears its approval
func (s *pgStore) UpdateTokenOwner(ctx context.Context, tokenID uint64, owner string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("token_id = ?", tokenID).
		Updates(map[string]interface{}{
			"owner":      owner,
			"approved":   nil,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update token owner: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrNonexistentToken
	}

	return nil
}

// SetTokenApproval sets or clears the approved address of a token
func (s *pgStore) SetTokenApproval(ctx context.Context, tokenID uint64, approved *string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("token_id = ?", tokenID).
		Updates(map[string]interface{}{
			"approved":   approved,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set token approval: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrNonexistentToken
	}

	return nil
}

// CountTokensByOwner counts the tokens owned by an address
func (s *pgStore) CountTokensByOwner(ctx context.Context, owner string) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("owner = ?", owner).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens by owner: %w", err)
	}

	return uint64(count), nil //nolint:gosec,G115 // count is never negative
}

// SetOperatorApproval grants or revokes an operator for all tokens of an owner
func (s *pgStore) SetOperatorApproval(ctx context.Context, owner, operator string, approved bool) error {
	db := s.db.WithContext(ctx)

	if !approved {
		err := db.Where("owner = ? AND operator = ?", owner, operator).
			Delete(&schema.OperatorApproval{}).Error
		if err != nil {
			return fmt.Errorf("failed to revoke operator approval: %w", err)
		}
		return nil
	}

	approval := schema.OperatorApproval{
		Owner:    owner,
		Operator: operator,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}, {Name: "operator"}},
		DoNothing: true,
	}).Create(&approval).Error
	if err != nil {
		return fmt.Errorf("failed to grant operator approval: %w", err)
	}

	return nil
}

// IsOperatorApproved checks if an operator is approved for all tokens of an owner
func (s *pgStore) IsOperatorApproved(ctx context.Context, owner, operator string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.OperatorApproval{}).
		Where("owner = ? AND operator = ?", owner, operator).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check operator approval: %w", err)
	}

	return count > 0, nil
}

// CreateEvent appends an event to the event journal
func (s *pgStore) CreateEvent(ctx context.Context, input CreateEventInput) (uint64, error) {
	event := schema.EventJournal{
		EventID:     input.EventID,
		EventType:   input.EventType,
		TokenID:     input.TokenID,
		FromAddress: input.From,
		ToAddress:   input.To,
		Approved:    input.Approved,
		Payload:     input.Payload,
		CreatedAt:   input.CreatedAt,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&event)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create event: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return 0, domain.ErrEventAlreadyExists
	}

	return event.Cursor, nil
}

// GetEventsAfterCursor retrieves journal entries with a cursor greater than cursor, oldest first
func (s *pgStore) GetEventsAfterCursor(ctx context.Context, cursor uint64, limit int) ([]schema.EventJournal, error) {
	query := s.db.WithContext(ctx).
		Where("cursor > ?", cursor).
		Order("cursor ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []schema.EventJournal
	err := query.Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}
