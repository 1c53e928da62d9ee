package ownership

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-nft-issuer/internal/adapter"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/store"
)

var supportedInterfaces = map[domain.InterfaceID]struct{}{
	domain.InterfaceIDERC165:         {},
	domain.InterfaceIDERC721:         {},
	domain.InterfaceIDERC721Metadata: {},
}

type erc721Registry struct {
	store store.Store
	clock adapter.Clock
	json  adapter.JSON
	jcs   adapter.JCS
}

// NewERC721Registry creates a store backed registry with ERC-721 semantics.
// Every state change is journaled in the same transaction as the change itself.
func NewERC721Registry(s store.Store, clock adapter.Clock, json adapter.JSON, jcs adapter.JCS) Registry {
	return &erc721Registry{
		store: s,
		clock: clock,
		json:  json,
		jcs:   jcs,
	}
}

// NewERC721Factory creates a factory of store backed ERC-721 registries
func NewERC721Factory(clock adapter.Clock, json adapter.JSON, jcs adapter.JCS) Factory {
	return func(s store.Store) Registry {
		return NewERC721Registry(s, clock, json, jcs)
	}
}

// withTx runs fn with a registry bound to a transaction of the current store
func (r *erc721Registry) withTx(ctx context.Context, fn func(tx *erc721Registry) error) error {
	return r.store.Transaction(ctx, func(tx store.Store) error {
		return fn(&erc721Registry{
			store: tx,
			clock: r.clock,
			json:  r.json,
			jcs:   r.jcs,
		})
	})
}

func (r *erc721Registry) Register(ctx context.Context, tokenID uint64, owner common.Address) error {
	if domain.IsZeroAddress(owner) {
		return domain.ErrInvalidReceiver
	}

	return r.withTx(ctx, func(tx *erc721Registry) error {
		if err := tx.store.CreateToken(ctx, tokenID, owner.Hex()); err != nil {
			return fmt.Errorf("failed to register token %d: %w", tokenID, err)
		}

		return tx.journal(ctx, domain.Event{
			Type:    domain.EventTypeTransfer,
			TokenID: &tokenID,
			From:    domain.ZeroAddress.Hex(),
			To:      owner.Hex(),
		})
	})
}

// requireOwned returns the owner of a token, domain.ErrNonexistentToken when not registered
func (r *erc721Registry) requireOwned(ctx context.Context, tokenID uint64) (common.Address, *string, error) {
	token, err := r.store.GetToken(ctx, tokenID)
	if err != nil {
		return common.Address{}, nil, err
	}
	if token == nil {
		return common.Address{}, nil, domain.ErrNonexistentToken
	}

	return common.HexToAddress(token.Owner), token.Approved, nil
}

func (r *erc721Registry) OwnerOf(ctx context.Context, tokenID uint64) (common.Address, error) {
	owner, _, err := r.requireOwned(ctx, tokenID)
	return owner, err
}

func (r *erc721Registry) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	if domain.IsZeroAddress(owner) {
		return 0, domain.ErrInvalidOwner
	}

	return r.store.CountTokensByOwner(ctx, owner.Hex())
}

func (r *erc721Registry) TransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64) error {
	return r.transfer(ctx, caller, from, to, tokenID, nil)
}

func (r *erc721Registry) SafeTransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	return r.transfer(ctx, caller, from, to, tokenID, data)
}

func (r *erc721Registry) transfer(ctx context.Context, caller, from, to common.Address, tokenID uint64, data []byte) error {
	if domain.IsZeroAddress(to) {
		return domain.ErrInvalidReceiver
	}

	return r.withTx(ctx, func(tx *erc721Registry) error {
		owner, approved, err := tx.requireOwned(ctx, tokenID)
		if err != nil {
			return err
		}

		authorized, err := tx.isAuthorized(ctx, owner, approved, caller)
		if err != nil {
			return err
		}
		if !authorized {
			return fmt.Errorf("%w: %s may not move token %d", domain.ErrInsufficientApproval, caller.Hex(), tokenID)
		}

		if owner != from {
			return fmt.Errorf("%w: token %d is owned by %s", domain.ErrIncorrectOwner, tokenID, owner.Hex())
		}

		if err := tx.store.UpdateTokenOwner(ctx, tokenID, to.Hex()); err != nil {
			return fmt.Errorf("failed to transfer token %d: %w", tokenID, err)
		}

		logger.DebugCtx(ctx, "Token transferred",
			zap.Uint64("tokenID", tokenID),
			zap.String("from", from.Hex()),
			zap.String("to", to.Hex()))

		return tx.journal(ctx, domain.Event{
			Type:    domain.EventTypeTransfer,
			TokenID: &tokenID,
			From:    from.Hex(),
			To:      to.Hex(),
			Data:    data,
		})
	})
}

// isAuthorized checks if spender is the owner, an operator of the owner or the approved address of the token
func (r *erc721Registry) isAuthorized(ctx context.Context, owner common.Address, approved *string, spender common.Address) (bool, error) {
	if domain.IsZeroAddress(spender) {
		return false, nil
	}
	if spender == owner {
		return true, nil
	}
	if approved != nil && common.HexToAddress(*approved) == spender {
		return true, nil
	}

	return r.store.IsOperatorApproved(ctx, owner.Hex(), spender.Hex())
}

func (r *erc721Registry) Approve(ctx context.Context, caller, to common.Address, tokenID uint64) error {
	return r.withTx(ctx, func(tx *erc721Registry) error {
		owner, _, err := tx.requireOwned(ctx, tokenID)
		if err != nil {
			return err
		}

		if caller != owner {
			operator, err := tx.store.IsOperatorApproved(ctx, owner.Hex(), caller.Hex())
			if err != nil {
				return err
			}
			if !operator {
				return fmt.Errorf("%w: %s", domain.ErrInvalidApprover, caller.Hex())
			}
		}

		var approved *string
		if !domain.IsZeroAddress(to) {
			address := to.Hex()
			approved = &address
		}
		if err := tx.store.SetTokenApproval(ctx, tokenID, approved); err != nil {
			return fmt.Errorf("failed to approve token %d: %w", tokenID, err)
		}

		return tx.journal(ctx, domain.Event{
			Type:    domain.EventTypeApproval,
			TokenID: &tokenID,
			From:    owner.Hex(),
			To:      to.Hex(),
		})
	})
}

func (r *erc721Registry) GetApproved(ctx context.Context, tokenID uint64) (common.Address, error) {
	_, approved, err := r.requireOwned(ctx, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	if approved == nil {
		return domain.ZeroAddress, nil
	}

	return common.HexToAddress(*approved), nil
}

func (r *erc721Registry) SetApprovalForAll(ctx context.Context, caller, operator common.Address, approved bool) error {
	if domain.IsZeroAddress(operator) {
		return domain.ErrInvalidOperator
	}

	return r.withTx(ctx, func(tx *erc721Registry) error {
		if err := tx.store.SetOperatorApproval(ctx, caller.Hex(), operator.Hex(), approved); err != nil {
			return fmt.Errorf("failed to set operator approval: %w", err)
		}

		return tx.journal(ctx, domain.Event{
			Type:     domain.EventTypeApprovalForAll,
			From:     caller.Hex(),
			To:       operator.Hex(),
			Approved: &approved,
		})
	})
}

func (r *erc721Registry) IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error) {
	return r.store.IsOperatorApproved(ctx, owner.Hex(), operator.Hex())
}

func (r *erc721Registry) SupportsInterface(ctx context.Context, interfaceID domain.InterfaceID) bool {
	_, ok := supportedInterfaces[interfaceID]
	return ok
}

// journal appends an event to the event journal of the bound store
func (r *erc721Registry) journal(ctx context.Context, event domain.Event) error {
	now := r.clock.Now().UTC()
	event.ID = ulid.MustNewDefault(now).String()
	event.Timestamp = now

	raw, err := r.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	payload, err := r.jcs.Transform(raw)
	if err != nil {
		return fmt.Errorf("failed to canonicalize event: %w", err)
	}

	_, err = r.store.CreateEvent(ctx, store.CreateEventInput{
		EventID:   event.ID,
		EventType: event.Type,
		TokenID:   event.TokenID,
		From:      event.From,
		To:        event.To,
		Approved:  event.Approved,
		Payload:   payload,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to journal %s event: %w", event.Type, err)
	}

	return nil
}
