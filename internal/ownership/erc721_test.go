package ownership_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-nft-issuer/internal/adapter"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/mocks"
	"github.com/feral-file/ff-nft-issuer/internal/ownership"
	"github.com/feral-file/ff-nft-issuer/internal/store"
)

var (
	alice    = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob      = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
	carol    = common.HexToAddress("0xca4010000000000000000000000000000000003a")
	operator = common.HexToAddress("0x0be4a70400000000000000000000000000000004")
)

func newTestRegistry(t *testing.T) (ownership.Registry, store.Store) {
	t.Helper()
	s := store.NewMemoryStore(adapter.NewClock())
	factory := ownership.NewERC721Factory(adapter.NewClock(), adapter.NewJSON(), adapter.NewJCS())
	return factory(s), s
}

func journal(t *testing.T, s store.Store) []domain.Event {
	t.Helper()
	rows, err := s.GetEventsAfterCursor(context.Background(), 0, 100)
	require.NoError(t, err)

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		var event domain.Event
		require.NoError(t, json.Unmarshal(row.Payload, &event))
		assert.Equal(t, row.EventID, event.ID)
		events = append(events, event)
	}
	return events
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	registry, s := newTestRegistry(t)

	require.NoError(t, registry.Register(ctx, 0, alice))

	owner, err := registry.OwnerOf(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	balance, err := registry.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	t.Run("zero receiver", func(t *testing.T) {
		err := registry.Register(ctx, 1, domain.ZeroAddress)
		assert.ErrorIs(t, err, domain.ErrInvalidReceiver)
	})

	t.Run("duplicate", func(t *testing.T) {
		err := registry.Register(ctx, 0, bob)
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)
	})

	t.Run("mint event", func(t *testing.T) {
		events := journal(t, s)
		require.Len(t, events, 1)
		assert.Equal(t, domain.EventTypeTransfer, events[0].Type)
		assert.True(t, events[0].IsMint())
		assert.Equal(t, alice.Hex(), events[0].To)
		require.NotNil(t, events[0].TokenID)
		assert.Equal(t, uint64(0), *events[0].TokenID)
	})
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry(t)

	_, err := registry.OwnerOf(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNonexistentToken)

	_, err = registry.GetApproved(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNonexistentToken)

	_, err = registry.BalanceOf(ctx, domain.ZeroAddress)
	assert.ErrorIs(t, err, domain.ErrInvalidOwner)

	balance, err := registry.BalanceOf(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(t *testing.T, registry ownership.Registry)
		caller  common.Address
		from    common.Address
		to      common.Address
		wantErr error
	}{
		{
			name:   "owner transfers",
			caller: alice,
			from:   alice,
			to:     bob,
		},
		{
			name: "approved address transfers",
			setup: func(t *testing.T, registry ownership.Registry) {
				require.NoError(t, registry.Approve(ctx, alice, carol, 0))
			},
			caller: carol,
			from:   alice,
			to:     bob,
		},
		{
			name: "operator transfers",
			setup: func(t *testing.T, registry ownership.Registry) {
				require.NoError(t, registry.SetApprovalForAll(ctx, alice, operator, true))
			},
			caller: operator,
			from:   alice,
			to:     bob,
		},
		{
			name:    "stranger is rejected",
			caller:  carol,
			from:    alice,
			to:      bob,
			wantErr: domain.ErrInsufficientApproval,
		},
		{
			name:    "wrong from is rejected",
			caller:  alice,
			from:    bob,
			to:      carol,
			wantErr: domain.ErrIncorrectOwner,
		},
		{
			name:    "zero receiver is rejected",
			caller:  alice,
			from:    alice,
			to:      domain.ZeroAddress,
			wantErr: domain.ErrInvalidReceiver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, s := newTestRegistry(t)
			require.NoError(t, registry.Register(ctx, 0, alice))
			if tt.setup != nil {
				tt.setup(t, registry)
			}
			before := len(journal(t, s))

			err := registry.TransferFrom(ctx, tt.caller, tt.from, tt.to, 0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				owner, err := registry.OwnerOf(ctx, 0)
				require.NoError(t, err)
				assert.Equal(t, alice, owner)
				assert.Len(t, journal(t, s), before)
				return
			}

			require.NoError(t, err)

			owner, err := registry.OwnerOf(ctx, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.to, owner)

			approved, err := registry.GetApproved(ctx, 0)
			require.NoError(t, err)
			assert.Equal(t, domain.ZeroAddress, approved)

			events := journal(t, s)
			require.Len(t, events, before+1)
			last := events[len(events)-1]
			assert.Equal(t, domain.EventTypeTransfer, last.Type)
			assert.Equal(t, tt.from.Hex(), last.From)
			assert.Equal(t, tt.to.Hex(), last.To)
		})
	}

	t.Run("nonexistent token", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		err := registry.TransferFrom(ctx, alice, alice, bob, 3)
		assert.ErrorIs(t, err, domain.ErrNonexistentToken)
	})
}

func TestSafeTransferFromCarriesData(t *testing.T) {
	ctx := context.Background()
	registry, s := newTestRegistry(t)
	require.NoError(t, registry.Register(ctx, 0, alice))

	require.NoError(t, registry.SafeTransferFrom(ctx, alice, alice, bob, 0, []byte{0xca, 0xfe}))

	events := journal(t, s)
	require.Len(t, events, 2)
	assert.Equal(t, []byte{0xca, 0xfe}, []byte(events[1].Data))

	balance, err := registry.BalanceOf(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	registry, s := newTestRegistry(t)
	require.NoError(t, registry.Register(ctx, 0, alice))

	err := registry.Approve(ctx, bob, carol, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidApprover)

	require.NoError(t, registry.Approve(ctx, alice, carol, 0))
	approved, err := registry.GetApproved(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, carol, approved)

	// An operator of the owner may approve
	require.NoError(t, registry.SetApprovalForAll(ctx, alice, operator, true))
	require.NoError(t, registry.Approve(ctx, operator, bob, 0))
	approved, err = registry.GetApproved(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, bob, approved)

	// Approving the zero address clears the approval
	require.NoError(t, registry.Approve(ctx, alice, domain.ZeroAddress, 0))
	approved, err = registry.GetApproved(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.ZeroAddress, approved)

	events := journal(t, s)
	require.Len(t, events, 5)
	assert.Equal(t, domain.EventTypeApproval, events[1].Type)
	assert.Equal(t, alice.Hex(), events[1].From)
	assert.Equal(t, carol.Hex(), events[1].To)
	assert.Equal(t, domain.EventTypeApprovalForAll, events[2].Type)
	assert.Equal(t, alice.Hex(), events[3].From)
}

func TestSetApprovalForAll(t *testing.T) {
	ctx := context.Background()
	registry, s := newTestRegistry(t)

	err := registry.SetApprovalForAll(ctx, alice, domain.ZeroAddress, true)
	assert.ErrorIs(t, err, domain.ErrInvalidOperator)

	require.NoError(t, registry.SetApprovalForAll(ctx, alice, operator, true))
	approved, err := registry.IsApprovedForAll(ctx, alice, operator)
	require.NoError(t, err)
	assert.True(t, approved)

	require.NoError(t, registry.SetApprovalForAll(ctx, alice, operator, false))
	approved, err = registry.IsApprovedForAll(ctx, alice, operator)
	require.NoError(t, err)
	assert.False(t, approved)

	events := journal(t, s)
	require.Len(t, events, 2)
	require.NotNil(t, events[1].Approved)
	assert.False(t, *events[1].Approved)
	assert.Nil(t, events[1].TokenID)
	assert.Equal(t, operator.Hex(), events[1].To)
}

func TestSupportsInterface(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	assert.True(t, registry.SupportsInterface(ctx, domain.InterfaceIDERC165))
	assert.True(t, registry.SupportsInterface(ctx, domain.InterfaceIDERC721))
	assert.True(t, registry.SupportsInterface(ctx, domain.InterfaceIDERC721Metadata))
	assert.False(t, registry.SupportsInterface(ctx, domain.InterfaceID{0xff, 0xff, 0xff, 0xff}))
}

func TestJournalFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("marshal fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJSON := mocks.NewMockJSON(ctrl)
		mockJCS := mocks.NewMockJCS(ctrl)
		mockJSON.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("marshal failed"))

		s := store.NewMemoryStore(adapter.NewClock())
		registry := ownership.NewERC721Registry(s, adapter.NewClock(), mockJSON, mockJCS)

		err := registry.Register(ctx, 0, alice)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal event")

		_, err = registry.OwnerOf(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrNonexistentToken)
		assert.Empty(t, journal(t, s))
	})

	t.Run("canonicalize fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJSON := mocks.NewMockJSON(ctrl)
		mockJCS := mocks.NewMockJCS(ctrl)
		mockJSON.EXPECT().Marshal(gomock.Any()).Return([]byte(`{"type":"transfer"}`), nil)
		mockJCS.EXPECT().Transform([]byte(`{"type":"transfer"}`)).Return(nil, errors.New("not canonical"))

		s := store.NewMemoryStore(adapter.NewClock())
		registry := ownership.NewERC721Registry(s, adapter.NewClock(), mockJSON, mockJCS)

		err := registry.Register(ctx, 0, alice)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to canonicalize event")

		_, err = registry.OwnerOf(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrNonexistentToken)

		balance, err := registry.BalanceOf(ctx, alice)
		require.NoError(t, err)
		assert.Zero(t, balance)
		assert.Empty(t, journal(t, s))
	})
}
