package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
)

const (
	testAdmin    = "0x1111111111111111111111111111111111111111"
	testOwner    = "0x2222222222222222222222222222222222222222"
	testReceiver = "0x3333333333333333333333333333333333333333"
	testOperator = "0x4444444444444444444444444444444444444444"
)

var errTestRollback = errors.New("rollback")

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestCollection creates a test collection input
func buildTestCollection(maxSupply uint64) CreateCollectionInput {
	return CreateCollectionInput{
		AdminAddress: testAdmin,
		Name:         "Demo",
		Symbol:       "DEMO",
		BaseURI:      "ipfs://base/",
		MaxSupply:    maxSupply,
	}
}

// buildTestAppend creates the append input of the next record of a buffer of bufferLen bytes
func buildTestAppend(tokenID, bufferLen uint64, uri string) AppendTokenURIInput {
	suffix := []byte(uri)
	start := bufferLen
	if bufferLen > 0 {
		suffix = append([]byte{domain.TOKEN_URI_SEPARATOR}, suffix...)
		start++
	}

	return AppendTokenURIInput{
		TokenID: tokenID,
		Suffix:  suffix,
		Start:   start,
		Length:  uint64(len(uri)),
	}
}

// buildTestEvent creates a test transfer event input
func buildTestEvent(id string, tokenID uint64, from, to string) CreateEventInput {
	return CreateEventInput{
		EventID:   id,
		EventType: domain.EventTypeTransfer,
		TokenID:   &tokenID,
		From:      from,
		To:        to,
		Payload:   []byte(fmt.Sprintf(`{"id":%q}`, id)),
		CreatedAt: time.Now().UTC(),
	}
}

// =============================================================================
// Test: Collection
// =============================================================================

func testCollection(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("collection is nil before initialization", func(t *testing.T) {
		collection, err := store.GetCollection(ctx)
		require.NoError(t, err)
		assert.Nil(t, collection)

		buffer, err := store.GetTokenURIs(ctx)
		require.NoError(t, err)
		assert.Empty(t, buffer)
	})

	t.Run("set next id before initialization fails", func(t *testing.T) {
		err := store.SetNextID(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrNotInitialized)
	})

	t.Run("create collection", func(t *testing.T) {
		err := store.CreateCollection(ctx, buildTestCollection(3))
		require.NoError(t, err)

		collection, err := store.GetCollection(ctx)
		require.NoError(t, err)
		require.NotNil(t, collection)
		assert.Equal(t, domain.PhaseActive, collection.Phase)
		assert.Equal(t, testAdmin, collection.AdminAddress)
		assert.Equal(t, "Demo", collection.Name)
		assert.Equal(t, "DEMO", collection.Symbol)
		assert.Equal(t, "ipfs://base/", collection.BaseURI)
		assert.Equal(t, uint64(3), collection.MaxSupply)
		assert.Equal(t, uint64(0), collection.NextID)
		assert.Equal(t, uint64(0), collection.TokenURIsLength)
	})

	t.Run("second creation fails and keeps the first", func(t *testing.T) {
		input := buildTestCollection(10)
		input.Name = "Other"

		err := store.CreateCollection(ctx, input)
		assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)

		collection, err := store.GetCollection(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Demo", collection.Name)
		assert.Equal(t, uint64(3), collection.MaxSupply)
	})

	t.Run("set next id", func(t *testing.T) {
		err := store.SetNextID(ctx, 2)
		require.NoError(t, err)

		collection, err := store.GetCollectionForUpdate(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), collection.NextID)
	})
}

// =============================================================================
// Test: Token URIs
// =============================================================================

func testTokenURIs(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("append before initialization fails", func(t *testing.T) {
		err := store.AppendTokenURI(ctx, buildTestAppend(0, 0, "ipfs://Qm0"))
		assert.ErrorIs(t, err, domain.ErrNotInitialized)

		_, found, err := store.GetTokenURIRecord(ctx, 0)
		require.NoError(t, err)
		assert.False(t, found)
	})

	require.NoError(t, store.CreateCollection(ctx, buildTestCollection(0)))

	uris := []string{"ipfs://Qm0", "ipfs://Qm1", "", "ipfs://Qm3"}
	var bufferLen uint64
	for i, uri := range uris {
		input := buildTestAppend(uint64(i), bufferLen, uri) //nolint:gosec,G115
		require.NoError(t, store.AppendTokenURI(ctx, input))
		bufferLen += uint64(len(input.Suffix))
	}

	t.Run("buffer holds separated records", func(t *testing.T) {
		buffer, err := store.GetTokenURIs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("ipfs://Qm0\nipfs://Qm1\n\nipfs://Qm3"), buffer)

		collection, err := store.GetCollection(ctx)
		require.NoError(t, err)
		assert.Equal(t, bufferLen, collection.TokenURIsLength)
	})

	t.Run("records are sliced by offset", func(t *testing.T) {
		for i, uri := range uris {
			record, found, err := store.GetTokenURIRecord(ctx, uint64(i)) //nolint:gosec,G115
			require.NoError(t, err)
			require.True(t, found, "token %d", i)
			assert.Equal(t, uri, string(record))
		}
	})

	t.Run("unknown record", func(t *testing.T) {
		_, found, err := store.GetTokenURIRecord(ctx, 99)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("returned buffer is not aliased", func(t *testing.T) {
		buffer, err := store.GetTokenURIs(ctx)
		require.NoError(t, err)
		_ = append(buffer, []byte("\nmutation")...)

		require.NoError(t, store.AppendTokenURI(ctx, buildTestAppend(4, bufferLen, "ipfs://Qm4")))

		again, err := store.GetTokenURIs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("ipfs://Qm0\nipfs://Qm1\n\nipfs://Qm3\nipfs://Qm4"), again)
	})
}

// =============================================================================
// Test: Tokens
// =============================================================================

func testTokens(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get unknown token returns nil", func(t *testing.T) {
		token, err := store.GetToken(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("create token", func(t *testing.T) {
		require.NoError(t, store.CreateToken(ctx, 1, testOwner))

		token, err := store.GetToken(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, uint64(1), token.TokenID)
		assert.Equal(t, testOwner, token.Owner)
		assert.Nil(t, token.Approved)
	})

	t.Run("create existing token fails", func(t *testing.T) {
		err := store.CreateToken(ctx, 1, testReceiver)
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)

		token, err := store.GetToken(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, testOwner, token.Owner)
	})

	t.Run("count tokens by owner", func(t *testing.T) {
		require.NoError(t, store.CreateToken(ctx, 2, testOwner))
		require.NoError(t, store.CreateToken(ctx, 3, testReceiver))

		count, err := store.CountTokensByOwner(ctx, testOwner)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)

		count, err = store.CountTokensByOwner(ctx, testOperator)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), count)
	})

	t.Run("set and clear approval", func(t *testing.T) {
		approved := testOperator
		require.NoError(t, store.SetTokenApproval(ctx, 1, &approved))

		token, err := store.GetToken(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, token.Approved)
		assert.Equal(t, testOperator, *token.Approved)

		require.NoError(t, store.SetTokenApproval(ctx, 1, nil))

		token, err = store.GetToken(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, token.Approved)
	})

	t.Run("update owner clears approval", func(t *testing.T) {
		approved := testOperator
		require.NoError(t, store.SetTokenApproval(ctx, 2, &approved))
		require.NoError(t, store.UpdateTokenOwner(ctx, 2, testReceiver))

		token, err := store.GetToken(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, testReceiver, token.Owner)
		assert.Nil(t, token.Approved)

		count, err := store.CountTokensByOwner(ctx, testReceiver)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)
	})

	t.Run("updates of unknown token fail", func(t *testing.T) {
		err := store.UpdateTokenOwner(ctx, 99, testReceiver)
		assert.ErrorIs(t, err, domain.ErrNonexistentToken)

		err = store.SetTokenApproval(ctx, 99, nil)
		assert.ErrorIs(t, err, domain.ErrNonexistentToken)
	})
}

// =============================================================================
// Test: Operator approvals
// =============================================================================

func testOperatorApprovals(t *testing.T, store Store) {
	ctx := context.Background()

	approved, err := store.IsOperatorApproved(ctx, testOwner, testOperator)
	require.NoError(t, err)
	assert.False(t, approved)

	// Granting twice is idempotent
	require.NoError(t, store.SetOperatorApproval(ctx, testOwner, testOperator, true))
	require.NoError(t, store.SetOperatorApproval(ctx, testOwner, testOperator, true))

	approved, err = store.IsOperatorApproved(ctx, testOwner, testOperator)
	require.NoError(t, err)
	assert.True(t, approved)

	// Approvals are directional
	approved, err = store.IsOperatorApproved(ctx, testOperator, testOwner)
	require.NoError(t, err)
	assert.False(t, approved)

	require.NoError(t, store.SetOperatorApproval(ctx, testOwner, testOperator, false))
	require.NoError(t, store.SetOperatorApproval(ctx, testOwner, testOperator, false))

	approved, err = store.IsOperatorApproved(ctx, testOwner, testOperator)
	require.NoError(t, err)
	assert.False(t, approved)
}

// =============================================================================
// Test: Event journal
// =============================================================================

func testEventJournal(t *testing.T, store Store) {
	ctx := context.Background()

	var cursors []uint64
	for i := 0; i < 5; i++ {
		cursor, err := store.CreateEvent(ctx, buildTestEvent(fmt.Sprintf("event-%d", i), uint64(i), domain.ZeroAddress.Hex(), testOwner)) //nolint:gosec,G115
		require.NoError(t, err)
		cursors = append(cursors, cursor)
	}

	t.Run("cursors strictly increase", func(t *testing.T) {
		for i := 1; i < len(cursors); i++ {
			assert.Greater(t, cursors[i], cursors[i-1])
		}
	})

	t.Run("get events after cursor", func(t *testing.T) {
		events, err := store.GetEventsAfterCursor(ctx, cursors[1], 10)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "event-2", events[0].EventID)
		assert.Equal(t, cursors[2], events[0].Cursor)
		assert.Equal(t, domain.EventTypeTransfer, events[0].EventType)
		require.NotNil(t, events[0].TokenID)
		assert.Equal(t, uint64(2), *events[0].TokenID)
		assert.Equal(t, domain.ZeroAddress.Hex(), events[0].FromAddress)
		assert.Equal(t, testOwner, events[0].ToAddress)
		assert.JSONEq(t, `{"id":"event-2"}`, string(events[0].Payload))
		assert.Equal(t, "event-4", events[2].EventID)
	})

	t.Run("limit", func(t *testing.T) {
		events, err := store.GetEventsAfterCursor(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "event-0", events[0].EventID)
		assert.Equal(t, "event-1", events[1].EventID)
	})

	t.Run("nothing after the last cursor", func(t *testing.T) {
		events, err := store.GetEventsAfterCursor(ctx, cursors[len(cursors)-1], 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("duplicate event id fails", func(t *testing.T) {
		_, err := store.CreateEvent(ctx, buildTestEvent("event-0", 0, domain.ZeroAddress.Hex(), testOwner))
		assert.ErrorIs(t, err, domain.ErrEventAlreadyExists)

		events, err := store.GetEventsAfterCursor(ctx, 0, 10)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})

	t.Run("approval for all event", func(t *testing.T) {
		flag := true
		cursor, err := store.CreateEvent(ctx, CreateEventInput{
			EventID:   "event-operator",
			EventType: domain.EventTypeApprovalForAll,
			From:      testOwner,
			To:        testOperator,
			Approved:  &flag,
			Payload:   []byte(`{}`),
		})
		require.NoError(t, err)

		events, err := store.GetEventsAfterCursor(ctx, cursor-1, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Nil(t, events[0].TokenID)
		require.NotNil(t, events[0].Approved)
		assert.True(t, *events[0].Approved)
	})
}

// =============================================================================
// Test: Relay cursor
// =============================================================================

func testRelayCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetRelayCursor(ctx, "relay_nonexistent")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and update cursor", func(t *testing.T) {
		require.NoError(t, store.SetRelayCursor(ctx, "relay", 100))
		require.NoError(t, store.SetRelayCursor(ctx, "relay", 200))

		cursor, err := store.GetRelayCursor(ctx, "relay")
		require.NoError(t, err)
		assert.Equal(t, uint64(200), cursor)

		other, err := store.GetRelayCursor(ctx, "relay_other")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), other)
	})
}

// =============================================================================
// Test: Transaction
// =============================================================================

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateCollection(ctx, buildTestCollection(0)))

	t.Run("commit", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			collection, err := tx.GetCollectionForUpdate(ctx)
			if err != nil {
				return err
			}
			if err := tx.AppendTokenURI(ctx, buildTestAppend(collection.NextID, collection.TokenURIsLength, "ipfs://Qm0")); err != nil {
				return err
			}
			if err := tx.CreateToken(ctx, collection.NextID, testOwner); err != nil {
				return err
			}
			return tx.SetNextID(ctx, collection.NextID+1)
		})
		require.NoError(t, err)

		collection, err := store.GetCollection(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), collection.NextID)

		token, err := store.GetToken(ctx, 0)
		require.NoError(t, err)
		assert.NotNil(t, token)
	})

	t.Run("rollback on error reverts every change", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			if err := tx.AppendTokenURI(ctx, buildTestAppend(1, uint64(len("ipfs://Qm0")), "ipfs://Qm1")); err != nil {
				return err
			}
			if err := tx.CreateToken(ctx, 1, testOwner); err != nil {
				return err
			}
			if err := tx.SetNextID(ctx, 2); err != nil {
				return err
			}
			if _, err := tx.CreateEvent(ctx, buildTestEvent("event-rollback", 1, domain.ZeroAddress.Hex(), testOwner)); err != nil {
				return err
			}
			if err := tx.SetOperatorApproval(ctx, testOwner, testOperator, true); err != nil {
				return err
			}
			return errTestRollback
		})
		assert.ErrorIs(t, err, errTestRollback)

		collection, err := store.GetCollection(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), collection.NextID)
		assert.Equal(t, uint64(len("ipfs://Qm0")), collection.TokenURIsLength)

		buffer, err := store.GetTokenURIs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("ipfs://Qm0"), buffer)

		_, found, err := store.GetTokenURIRecord(ctx, 1)
		require.NoError(t, err)
		assert.False(t, found)

		token, err := store.GetToken(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, token)

		events, err := store.GetEventsAfterCursor(ctx, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, events)

		approved, err := store.IsOperatorApproved(ctx, testOwner, testOperator)
		require.NoError(t, err)
		assert.False(t, approved)
	})

	t.Run("nested rollback keeps the outer changes", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			if err := tx.CreateToken(ctx, 10, testOwner); err != nil {
				return err
			}

			err := tx.Transaction(ctx, func(inner Store) error {
				if err := inner.CreateToken(ctx, 11, testOwner); err != nil {
					return err
				}
				return errTestRollback
			})
			if !errors.Is(err, errTestRollback) {
				return fmt.Errorf("unexpected nested result: %v", err)
			}

			return nil
		})
		require.NoError(t, err)

		token, err := store.GetToken(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, token)

		token, err = store.GetToken(ctx, 11)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("domain errors inside a transaction roll back", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			if err := tx.UpdateTokenOwner(ctx, 10, testReceiver); err != nil {
				return err
			}
			return tx.CreateToken(ctx, 10, testReceiver)
		})
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)

		token, err := store.GetToken(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, testOwner, token.Owner)
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Collection", testCollection},
		{"TokenURIs", testTokenURIs},
		{"Tokens", testTokens},
		{"OperatorApprovals", testOperatorApprovals},
		{"EventJournal", testEventJournal},
		{"RelayCursor", testRelayCursor},
		{"Transaction", testTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
