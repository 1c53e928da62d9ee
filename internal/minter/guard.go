package minter

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// phaseOf returns the lifecycle phase of a stored collection (nil means no row yet)
func phaseOf(collection *schema.Collection) domain.Phase {
	if collection == nil {
		return domain.PhaseUninitialized
	}
	return collection.Phase
}

// checkInitialize gates initialize on the collection state, not on the caller identity:
// whoever initializes first becomes the admin.
func checkInitialize(collection *schema.Collection, caller common.Address) error {
	if phaseOf(collection) != domain.PhaseUninitialized {
		return domain.ErrAlreadyInitialized
	}
	if domain.IsZeroAddress(caller) {
		return domain.ErrInvalidCaller
	}
	return nil
}

// requireActive fails with domain.ErrNotInitialized until initialize has succeeded
func requireActive(collection *schema.Collection) error {
	if phaseOf(collection) != domain.PhaseActive {
		return domain.ErrNotInitialized
	}
	return nil
}

// adminOf returns the admin address, zero before initialization
func adminOf(collection *schema.Collection) common.Address {
	if collection == nil {
		return domain.ZeroAddress
	}
	return common.HexToAddress(collection.AdminAddress)
}
