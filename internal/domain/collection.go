package domain

import "github.com/ethereum/go-ethereum/common"

// Phase represents the lifecycle phase of the collection
type Phase string

const (
	// PhaseUninitialized means initialize has not been called yet
	PhaseUninitialized Phase = "uninitialized"
	// PhaseActive means the collection has an owner and accepts mints
	PhaseActive Phase = "active"
)

// Collection is a read-only snapshot of the collection descriptors and counters
type Collection struct {
	Phase       Phase          `json:"phase"`
	Owner       common.Address `json:"owner"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	BaseURI     string         `json:"base_uri"`
	MaxSupply   uint64         `json:"max_supply"`   // 0 means unbounded
	TotalMinted uint64         `json:"total_minted"` // equals the next identifier to assign
}

// Active reports whether the collection has been initialized
func (c *Collection) Active() bool {
	return c != nil && c.Phase == PhaseActive
}
