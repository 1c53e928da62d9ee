// Package ownership provides the token ownership registry consumed by the minter:
// registration of freshly minted tokens and the standard ERC-721 ownership,
// approval and transfer operations.
package ownership

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/store"
)

// Registry defines the token ownership operations.
// Every failure is one of the domain ownership errors, possibly wrapped.
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Register records a new token owned by owner and emits Transfer(zero, owner, tokenID)
	Register(ctx context.Context, tokenID uint64, owner common.Address) error
	// OwnerOf returns the owner of a registered token
	OwnerOf(ctx context.Context, tokenID uint64) (common.Address, error)
	// BalanceOf counts the tokens owned by owner
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	// TransferFrom moves a token on behalf of caller
	TransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64) error
	// SafeTransferFrom moves a token on behalf of caller, data is carried in the emitted event
	SafeTransferFrom(ctx context.Context, caller, from, to common.Address, tokenID uint64, data []byte) error
	// Approve sets the address allowed to move a token (zero clears it)
	Approve(ctx context.Context, caller, to common.Address, tokenID uint64) error
	// GetApproved returns the address allowed to move a token, zero when none
	GetApproved(ctx context.Context, tokenID uint64) (common.Address, error)
	// SetApprovalForAll grants or revokes an operator for all tokens of caller
	SetApprovalForAll(ctx context.Context, caller, operator common.Address, approved bool) error
	// IsApprovedForAll checks if operator may manage all tokens of owner
	IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error)
	// SupportsInterface reports whether an ERC-165 interface is implemented
	SupportsInterface(ctx context.Context, interfaceID domain.InterfaceID) bool
}

// Factory binds a registry to a store, usually the transaction of the calling operation
type Factory func(s store.Store) Registry
