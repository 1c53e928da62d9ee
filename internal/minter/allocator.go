package minter

import (
	"fmt"
	"math"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// allocate returns the identifier of the next mint. It never advances the counter;
// the mint does that once registration and the ledger append have succeeded.
func allocate(collection *schema.Collection) (uint64, error) {
	next := collection.NextID

	if collection.MaxSupply != 0 && next >= collection.MaxSupply {
		return 0, fmt.Errorf("%w: %d of %d minted", domain.ErrSupplyCapReached, next, collection.MaxSupply)
	}

	// An unbounded collection still cannot go past the identifier space
	if next == math.MaxUint64 {
		return 0, fmt.Errorf("%w: identifier space exhausted", domain.ErrSupplyCapReached)
	}

	return next, nil
}
