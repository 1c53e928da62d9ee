package minter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name      string
		nextID    uint64
		maxSupply uint64
		want      uint64
		wantErr   error
	}{
		{name: "first token", nextID: 0, maxSupply: 3, want: 0},
		{name: "last token under cap", nextID: 2, maxSupply: 3, want: 2},
		{name: "cap reached", nextID: 3, maxSupply: 3, wantErr: domain.ErrSupplyCapReached},
		{name: "unbounded", nextID: 1_000_000, maxSupply: 0, want: 1_000_000},
		{name: "last identifier", nextID: math.MaxUint64 - 1, maxSupply: 0, want: math.MaxUint64 - 1},
		{name: "identifier space exhausted", nextID: math.MaxUint64, maxSupply: 0, wantErr: domain.ErrSupplyCapReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection := &schema.Collection{NextID: tt.nextID, MaxSupply: tt.maxSupply}

			id, err := allocate(collection)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.nextID, collection.NextID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, tt.nextID, collection.NextID)
		})
	}
}
