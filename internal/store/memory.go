package store

import (
	"context"
	"sort"
	"sync"

	"github.com/feral-file/ff-nft-issuer/internal/adapter"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/ledger"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

type operatorKey struct {
	owner    string
	operator string
}

// memoryState is the data held by the memory store. Writers are serialized by memoryStore.mu.
type memoryState struct {
	collection   *schema.Collection
	tokenURIs    []byte
	offsets      map[uint64]schema.TokenURIOffset
	tokens       map[uint64]schema.Token
	operators    map[operatorKey]schema.OperatorApproval
	events       []schema.EventJournal
	eventIDs     map[string]struct{}
	nextCursor   uint64
	relayCursors map[string]uint64
}

// memoryStore is an in-process Store used for development and tests
type memoryStore struct {
	mu    sync.Mutex
	clock adapter.Clock
	state *memoryState
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore(clock adapter.Clock) Store {
	return &memoryStore{
		clock: clock,
		state: &memoryState{
			tokenURIs:    []byte{},
			offsets:      make(map[uint64]schema.TokenURIOffset),
			tokens:       make(map[uint64]schema.Token),
			operators:    make(map[operatorKey]schema.OperatorApproval),
			eventIDs:     make(map[string]struct{}),
			nextCursor:   1,
			relayCursors: make(map[string]uint64),
		},
	}
}

// tx returns a non-recording transaction over the state; the caller must hold s.mu
func (s *memoryStore) tx() *memTx {
	return &memTx{clock: s.clock, state: s.state}
}

// Transaction runs fn holding the store lock and rolls back every change made through tx on error or panic
func (s *memoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx().Transaction(ctx, fn)
}

func (s *memoryStore) GetCollection(ctx context.Context) (*schema.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetCollection(ctx)
}

func (s *memoryStore) GetCollectionForUpdate(ctx context.Context) (*schema.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetCollectionForUpdate(ctx)
}

func (s *memoryStore) CreateCollection(ctx context.Context, input CreateCollectionInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().CreateCollection(ctx, input)
}

func (s *memoryStore) SetNextID(ctx context.Context, nextID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().SetNextID(ctx, nextID)
}

func (s *memoryStore) GetTokenURIs(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetTokenURIs(ctx)
}

func (s *memoryStore) GetTokenURIRecord(ctx context.Context, tokenID uint64) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetTokenURIRecord(ctx, tokenID)
}

func (s *memoryStore) AppendTokenURI(ctx context.Context, input AppendTokenURIInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().Transaction(ctx, func(tx Store) error {
		return tx.AppendTokenURI(ctx, input)
	})
}

func (s *memoryStore) CreateToken(ctx context.Context, tokenID uint64, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().CreateToken(ctx, tokenID, owner)
}

func (s *memoryStore) GetToken(ctx context.Context, tokenID uint64) (*schema.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetToken(ctx, tokenID)
}

func (s *memoryStore) UpdateTokenOwner(ctx context.Context, tokenID uint64, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().UpdateTokenOwner(ctx, tokenID, owner)
}

func (s *memoryStore) SetTokenApproval(ctx context.Context, tokenID uint64, approved *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().SetTokenApproval(ctx, tokenID, approved)
}

func (s *memoryStore) CountTokensByOwner(ctx context.Context, owner string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().CountTokensByOwner(ctx, owner)
}

func (s *memoryStore) SetOperatorApproval(ctx context.Context, owner, operator string, approved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().SetOperatorApproval(ctx, owner, operator, approved)
}

func (s *memoryStore) IsOperatorApproved(ctx context.Context, owner, operator string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().IsOperatorApproved(ctx, owner, operator)
}

func (s *memoryStore) CreateEvent(ctx context.Context, input CreateEventInput) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().CreateEvent(ctx, input)
}

func (s *memoryStore) GetEventsAfterCursor(ctx context.Context, cursor uint64, limit int) ([]schema.EventJournal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetEventsAfterCursor(ctx, cursor, limit)
}

func (s *memoryStore) GetRelayCursor(ctx context.Context, consumer string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().GetRelayCursor(ctx, consumer)
}

func (s *memoryStore) SetRelayCursor(ctx context.Context, consumer string, cursor uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().SetRelayCursor(ctx, consumer, cursor)
}

// memTx applies changes directly to the state and records how to revert each of them
type memTx struct {
	clock adapter.Clock
	state *memoryState
	undo  []func()
}

func (t *memTx) record(fn func()) {
	t.undo = append(t.undo, fn)
}

// rollbackTo reverts every change recorded after mark, newest first
func (t *memTx) rollbackTo(mark int) {
	for i := len(t.undo) - 1; i >= mark; i-- {
		t.undo[i]()
	}
	t.undo = t.undo[:mark]
}

func (t *memTx) Transaction(ctx context.Context, fn func(tx Store) error) (err error) {
	mark := len(t.undo)

	defer func() {
		if r := recover(); r != nil {
			t.rollbackTo(mark)
			panic(r)
		}
	}()

	if err = fn(t); err != nil {
		t.rollbackTo(mark)
		return err
	}

	return nil
}

func (t *memTx) GetCollection(ctx context.Context) (*schema.Collection, error) {
	if t.state.collection == nil {
		return nil, nil
	}

	collection := *t.state.collection
	collection.TokenURIs = nil
	collection.TokenURIsLength = uint64(len(t.state.tokenURIs))
	return &collection, nil
}

func (t *memTx) GetCollectionForUpdate(ctx context.Context) (*schema.Collection, error) {
	return t.GetCollection(ctx)
}

func (t *memTx) CreateCollection(ctx context.Context, input CreateCollectionInput) error {
	if t.state.collection != nil {
		return domain.ErrAlreadyInitialized
	}

	now := t.clock.Now()
	t.state.collection = &schema.Collection{
		ID:           schema.COLLECTION_ROW_ID,
		Phase:        domain.PhaseActive,
		AdminAddress: input.AdminAddress,
		Name:         input.Name,
		Symbol:       input.Symbol,
		BaseURI:      input.BaseURI,
		MaxSupply:    input.MaxSupply,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	t.record(func() { t.state.collection = nil })

	return nil
}

func (t *memTx) SetNextID(ctx context.Context, nextID uint64) error {
	collection := t.state.collection
	if collection == nil {
		return domain.ErrNotInitialized
	}

	prevNextID, prevUpdatedAt := collection.NextID, collection.UpdatedAt
	collection.NextID = nextID
	collection.UpdatedAt = t.clock.Now()
	t.record(func() {
		collection.NextID = prevNextID
		collection.UpdatedAt = prevUpdatedAt
	})

	return nil
}

func (t *memTx) GetTokenURIs(ctx context.Context) ([]byte, error) {
	// Full slice expression so appends by the caller never write into the shared buffer
	n := len(t.state.tokenURIs)
	return t.state.tokenURIs[:n:n], nil
}

func (t *memTx) GetTokenURIRecord(ctx context.Context, tokenID uint64) ([]byte, bool, error) {
	offset, ok := t.state.offsets[tokenID]
	if !ok {
		return nil, false, nil
	}

	slice, ok := ledger.Slice(t.state.tokenURIs, ledger.Offset{Start: offset.Start, Length: offset.Length})
	if !ok {
		return nil, false, nil
	}

	record := make([]byte, len(slice))
	copy(record, slice)
	return record, true, nil
}

func (t *memTx) AppendTokenURI(ctx context.Context, input AppendTokenURIInput) error {
	if t.state.collection == nil {
		return domain.ErrNotInitialized
	}

	prev := t.state.tokenURIs
	t.state.tokenURIs = append(t.state.tokenURIs, input.Suffix...)
	t.record(func() { t.state.tokenURIs = prev })

	prevOffset, existed := t.state.offsets[input.TokenID]
	t.state.offsets[input.TokenID] = schema.TokenURIOffset{
		TokenID: input.TokenID,
		Start:   input.Start,
		Length:  input.Length,
	}
	t.record(func() {
		if existed {
			t.state.offsets[input.TokenID] = prevOffset
		} else {
			delete(t.state.offsets, input.TokenID)
		}
	})

	return nil
}

func (t *memTx) CreateToken(ctx context.Context, tokenID uint64, owner string) error {
	if _, ok := t.state.tokens[tokenID]; ok {
		return domain.ErrTokenAlreadyExists
	}

	now := t.clock.Now()
	t.state.tokens[tokenID] = schema.Token{
		TokenID:   tokenID,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.record(func() { delete(t.state.tokens, tokenID) })

	return nil
}

func (t *memTx) GetToken(ctx context.Context, tokenID uint64) (*schema.Token, error) {
	token, ok := t.state.tokens[tokenID]
	if !ok {
		return nil, nil
	}

	if token.Approved != nil {
		approved := *token.Approved
		token.Approved = &approved
	}
	return &token, nil
}

// updateToken replaces a token through fn and records the previous version
func (t *memTx) updateToken(tokenID uint64, fn func(token *schema.Token)) error {
	prev, ok := t.state.tokens[tokenID]
	if !ok {
		return domain.ErrNonexistentToken
	}

	token := prev
	fn(&token)
	token.UpdatedAt = t.clock.Now()
	t.state.tokens[tokenID] = token
	t.record(func() { t.state.tokens[tokenID] = prev })

	return nil
}

func (t *memTx) UpdateTokenOwner(ctx context.Context, tokenID uint64, owner string) error {
	return t.updateToken(tokenID, func(token *schema.Token) {
		token.Owner = owner
		token.Approved = nil
	})
}

func (t *memTx) SetTokenApproval(ctx context.Context, tokenID uint64, approved *string) error {
	var value *string
	if approved != nil {
		v := *approved
		value = &v
	}

	return t.updateToken(tokenID, func(token *schema.Token) {
		token.Approved = value
	})
}

func (t *memTx) CountTokensByOwner(ctx context.Context, owner string) (uint64, error) {
	var count uint64
	for _, token := range t.state.tokens {
		if token.Owner == owner {
			count++
		}
	}
	return count, nil
}

func (t *memTx) SetOperatorApproval(ctx context.Context, owner, operator string, approved bool) error {
	key := operatorKey{owner: owner, operator: operator}
	prev, existed := t.state.operators[key]

	if approved {
		if existed {
			return nil
		}
		t.state.operators[key] = schema.OperatorApproval{
			Owner:     owner,
			Operator:  operator,
			CreatedAt: t.clock.Now(),
		}
	} else {
		if !existed {
			return nil
		}
		delete(t.state.operators, key)
	}

	t.record(func() {
		if existed {
			t.state.operators[key] = prev
		} else {
			delete(t.state.operators, key)
		}
	})

	return nil
}

func (t *memTx) IsOperatorApproved(ctx context.Context, owner, operator string) (bool, error) {
	_, ok := t.state.operators[operatorKey{owner: owner, operator: operator}]
	return ok, nil
}

func (t *memTx) CreateEvent(ctx context.Context, input CreateEventInput) (uint64, error) {
	if _, ok := t.state.eventIDs[input.EventID]; ok {
		return 0, domain.ErrEventAlreadyExists
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = t.clock.Now()
	}

	// Cursors are never reused, even after a rollback
	cursor := t.state.nextCursor
	t.state.nextCursor++

	prev := t.state.events
	t.state.events = append(t.state.events, schema.EventJournal{
		Cursor:      cursor,
		EventID:     input.EventID,
		EventType:   input.EventType,
		TokenID:     input.TokenID,
		FromAddress: input.From,
		ToAddress:   input.To,
		Approved:    input.Approved,
		Payload:     input.Payload,
		CreatedAt:   createdAt,
	})
	t.state.eventIDs[input.EventID] = struct{}{}
	t.record(func() {
		t.state.events = prev
		delete(t.state.eventIDs, input.EventID)
	})

	return cursor, nil
}

func (t *memTx) GetEventsAfterCursor(ctx context.Context, cursor uint64, limit int) ([]schema.EventJournal, error) {
	events := t.state.events

	// Events are appended in cursor order
	i := sort.Search(len(events), func(i int) bool {
		return events[i].Cursor > cursor
	})

	end := len(events)
	if limit > 0 && i+limit < end {
		end = i + limit
	}

	result := make([]schema.EventJournal, end-i)
	copy(result, events[i:end])
	return result, nil
}

func (t *memTx) GetRelayCursor(ctx context.Context, consumer string) (uint64, error) {
	return t.state.relayCursors[consumer], nil
}

func (t *memTx) SetRelayCursor(ctx context.Context, consumer string, cursor uint64) error {
	prev, existed := t.state.relayCursors[consumer]
	t.state.relayCursors[consumer] = cursor
	t.record(func() {
		if existed {
			t.state.relayCursors[consumer] = prev
		} else {
			delete(t.state.relayCursors, consumer)
		}
	})

	return nil
}
