package minter

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-nft-issuer/internal/ledger"
)

// LedgerStatus describes how the metadata buffer lines up with the mint counter
type LedgerStatus struct {
	TotalMinted uint64
	// Records is the number of records found by splitting the buffer at separators
	Records uint64
	// EmptyRecords lists the positions of zero-length records
	EmptyRecords []uint64
}

// Consistent reports whether record i of the buffer can still be token i for every token.
// A URI containing the separator, or an empty URI, accepted in legacy mode breaks this.
func (s *LedgerStatus) Consistent() bool {
	return s.Records == s.TotalMinted && len(s.EmptyRecords) == 0
}

func (m *minter) CheckLedger(ctx context.Context) (*LedgerStatus, error) {
	collection, err := m.collection(ctx)
	if err != nil {
		return nil, err
	}

	status := &LedgerStatus{EmptyRecords: []uint64{}}
	if collection == nil {
		return status, nil
	}

	buffer, err := m.store.GetTokenURIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token uris: %w", err)
	}

	status.TotalMinted = collection.NextID
	status.Records = ledger.Count(buffer)
	for i, offset := range ledger.Offsets(buffer) {
		if offset.Length == 0 {
			status.EmptyRecords = append(status.EmptyRecords, uint64(i)) //nolint:gosec,G115
		}
	}

	return status, nil
}
