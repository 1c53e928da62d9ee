package minter

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/ledger"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/ownership"
	"github.com/feral-file/ff-nft-issuer/internal/store"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// LookupMode selects how token URIs are read back
type LookupMode string

const (
	// LookupModeScan reads the whole buffer and scans its separators
	LookupModeScan LookupMode = "scan"
	// LookupModeIndex reads a single record through the offset index
	LookupModeIndex LookupMode = "index"
)

// IsValidLookupMode checks if a lookup mode is known
func IsValidLookupMode(mode LookupMode) bool {
	return mode == LookupModeScan || mode == LookupModeIndex
}

// Config holds the minter configuration
type Config struct {
	// AllowSeparatorInURI skips URI validation at mint time. A URI containing the
	// record separator then shifts every later record in scan lookups.
	AllowSeparatorInURI bool
	// LookupMode selects how TokenURI reads the buffer, scan when empty
	LookupMode LookupMode
}

// InitializeInput represents the collection descriptors set by Initialize
type InitializeInput struct {
	Name      string
	Symbol    string
	BaseURI   string
	MaxSupply uint64 // 0 means unbounded
}

// Minter defines the operations of the NFT issuer
//
//go:generate mockgen -source=minter.go -destination=../mocks/minter.go -package=mocks -mock_names=Minter=MockMinter
type Minter interface {
	// Initialize sets the caller as admin and stores the collection descriptors, once
	Initialize(ctx context.Context, caller common.Address, input InitializeInput) error
	// GetOwner returns the admin address, zero before initialization
	GetOwner(ctx context.Context) (common.Address, error)
	// TotalMinted returns the number of minted tokens, which is also the next identifier
	TotalMinted(ctx context.Context) (uint64, error)
	// Mint registers the next identifier to `to` and records its URI
	Mint(ctx context.Context, to common.Address, uri string) (uint64, error)

	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	BaseURI(ctx context.Context) (string, error)
	MaxSupply(ctx context.Context) (uint64, error)
	// Collection returns a snapshot of the descriptors and counters
	Collection(ctx context.Context) (*domain.Collection, error)
	// TokenURI returns the URI recorded for a registered token
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
	// CheckLedger compares the metadata buffer with the mint counter
	CheckLedger(ctx context.Context) (*LedgerStatus, error)

	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	OwnerOf(ctx context.Context, tokenID uint64) (common.Address, error)
	TransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64) error
	SafeTransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64) error
	SafeTransferFromWithData(ctx context.Context, caller, from, to common.Address, tokenID uint64, data []byte) error
	Approve(ctx context.Context, caller, to common.Address, tokenID uint64) error
	SetApprovalForAll(ctx context.Context, caller, operator common.Address, approved bool) error
	GetApproved(ctx context.Context, tokenID uint64) (common.Address, error)
	IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error)
	SupportsInterface(ctx context.Context, interfaceID domain.InterfaceID) bool
}

type minter struct {
	config   Config
	store    store.Store
	registry ownership.Factory
}

// NewMinter creates a new minter. Each operation runs in one store transaction
// and binds a registry from the factory to it.
func NewMinter(config Config, s store.Store, registry ownership.Factory) Minter {
	if config.LookupMode == "" {
		config.LookupMode = LookupModeScan
	}

	return &minter{
		config:   config,
		store:    s,
		registry: registry,
	}
}

func (m *minter) Initialize(ctx context.Context, caller common.Address, input InitializeInput) error {
	err := m.store.Transaction(ctx, func(tx store.Store) error {
		collection, err := tx.GetCollectionForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("failed to get collection: %w", err)
		}

		if err := checkInitialize(collection, caller); err != nil {
			return err
		}

		return tx.CreateCollection(ctx, store.CreateCollectionInput{
			AdminAddress: caller.Hex(),
			Name:         input.Name,
			Symbol:       input.Symbol,
			BaseURI:      input.BaseURI,
			MaxSupply:    input.MaxSupply,
		})
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Collection initialized",
		zap.String("admin", caller.Hex()),
		zap.String("name", input.Name),
		zap.String("symbol", input.Symbol),
		zap.Uint64("maxSupply", input.MaxSupply))

	return nil
}

// collection loads the stored collection, nil before initialization
func (m *minter) collection(ctx context.Context) (*schema.Collection, error) {
	collection, err := m.store.GetCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return collection, nil
}

func (m *minter) GetOwner(ctx context.Context) (common.Address, error) {
	collection, err := m.collection(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return adminOf(collection), nil
}

func (m *minter) TotalMinted(ctx context.Context) (uint64, error) {
	collection, err := m.collection(ctx)
	if err != nil || collection == nil {
		return 0, err
	}
	return collection.NextID, nil
}

func (m *minter) Mint(ctx context.Context, to common.Address, uri string) (uint64, error) {
	var tokenID uint64
	err := m.store.Transaction(ctx, func(tx store.Store) error {
		collection, err := tx.GetCollectionForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("failed to get collection: %w", err)
		}
		if err := requireActive(collection); err != nil {
			return err
		}

		if !m.config.AllowSeparatorInURI {
			if err := ledger.ValidateURI(uri); err != nil {
				return err
			}
		}

		id, err := allocate(collection)
		if err != nil {
			return err
		}

		if err := m.registry(tx).Register(ctx, id, to); err != nil {
			return err
		}

		offset := ledger.NextOffset(collection.TokenURIsLength, uri)
		err = tx.AppendTokenURI(ctx, store.AppendTokenURIInput{
			TokenID: id,
			Suffix:  ledger.Suffix(collection.TokenURIsLength, uri),
			Start:   offset.Start,
			Length:  offset.Length,
		})
		if err != nil {
			return fmt.Errorf("failed to append token uri: %w", err)
		}

		if err := tx.SetNextID(ctx, id+1); err != nil {
			return fmt.Errorf("failed to advance next id: %w", err)
		}

		tokenID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Token minted",
		zap.Uint64("tokenID", tokenID),
		zap.String("to", to.Hex()),
		zap.String("uri", uri))

	return tokenID, nil
}

func (m *minter) Name(ctx context.Context) (string, error) {
	collection, err := m.Collection(ctx)
	if err != nil {
		return "", err
	}
	return collection.Name, nil
}

func (m *minter) Symbol(ctx context.Context) (string, error) {
	collection, err := m.Collection(ctx)
	if err != nil {
		return "", err
	}
	return collection.Symbol, nil
}

func (m *minter) BaseURI(ctx context.Context) (string, error) {
	collection, err := m.Collection(ctx)
	if err != nil {
		return "", err
	}
	return collection.BaseURI, nil
}

func (m *minter) MaxSupply(ctx context.Context) (uint64, error) {
	collection, err := m.Collection(ctx)
	if err != nil {
		return 0, err
	}
	return collection.MaxSupply, nil
}

func (m *minter) Collection(ctx context.Context) (*domain.Collection, error) {
	collection, err := m.collection(ctx)
	if err != nil {
		return nil, err
	}

	if collection == nil {
		return &domain.Collection{Phase: domain.PhaseUninitialized}, nil
	}

	return &domain.Collection{
		Phase:       collection.Phase,
		Owner:       adminOf(collection),
		Name:        collection.Name,
		Symbol:      collection.Symbol,
		BaseURI:     collection.BaseURI,
		MaxSupply:   collection.MaxSupply,
		TotalMinted: collection.NextID,
	}, nil
}

func (m *minter) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	// Existence is decided by the registry, not by the buffer
	if _, err := m.registry(m.store).OwnerOf(ctx, tokenID); err != nil {
		return "", err
	}

	var (
		uri   string
		found bool
	)

	switch m.config.LookupMode {
	case LookupModeIndex:
		record, ok, err := m.store.GetTokenURIRecord(ctx, tokenID)
		if err != nil {
			return "", fmt.Errorf("failed to get token uri record: %w", err)
		}
		if ok {
			uri, found = ledger.Decode(record), true
		}
	default:
		buffer, err := m.store.GetTokenURIs(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get token uris: %w", err)
		}
		uri, found = ledger.Lookup(buffer, tokenID)
	}

	if !found {
		logger.WarnCtx(ctx, "No token uri recorded for registered token", zap.Uint64("tokenID", tokenID))
		return "", nil
	}

	return uri, nil
}

// mutate runs fn in a transaction holding the collection lock so ownership changes are serialized with mints
func (m *minter) mutate(ctx context.Context, fn func(registry ownership.Registry) error) error {
	return m.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetCollectionForUpdate(ctx); err != nil {
			return fmt.Errorf("failed to lock collection: %w", err)
		}
		return fn(m.registry(tx))
	})
}

func (m *minter) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return m.registry(m.store).BalanceOf(ctx, owner)
}

func (m *minter) OwnerOf(ctx context.Context, tokenID uint64) (common.Address, error) {
	return m.registry(m.store).OwnerOf(ctx, tokenID)
}

func (m *minter) TransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64) error {
	return m.mutate(ctx, func(registry ownership.Registry) error {
		return registry.TransferFrom(ctx, caller, from, to, tokenID)
	})
}

func (m *minter) SafeTransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64) error {
	return m.SafeTransferFromWithData(ctx, caller, from, to, tokenID, nil)
}

func (m *minter) SafeTransferFromWithData(ctx context.Context, caller, from, to common.Address, tokenID uint64, data []byte) error {
	return m.mutate(ctx, func(registry ownership.Registry) error {
		return registry.SafeTransferFrom(ctx, caller, from, to, tokenID, data)
	})
}

func (m *minter) Approve(ctx context.Context, caller, to common.Address, tokenID uint64) error {
	return m.mutate(ctx, func(registry ownership.Registry) error {
		return registry.Approve(ctx, caller, to, tokenID)
	})
}

func (m *minter) SetApprovalForAll(ctx context.Context, caller, operator common.Address, approved bool) error {
	return m.mutate(ctx, func(registry ownership.Registry) error {
		return registry.SetApprovalForAll(ctx, caller, operator, approved)
	})
}

func (m *minter) GetApproved(ctx context.Context, tokenID uint64) (common.Address, error) {
	return m.registry(m.store).GetApproved(ctx, tokenID)
}

func (m *minter) IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error) {
	return m.registry(m.store).IsApprovedForAll(ctx, owner, operator)
}

func (m *minter) SupportsInterface(ctx context.Context, interfaceID domain.InterfaceID) bool {
	return m.registry(m.store).SupportsInterface(ctx, interfaceID)
}
