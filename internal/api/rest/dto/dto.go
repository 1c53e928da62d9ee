package dto

import (
	"github.com/feral-file/ff-nft-issuer/internal/domain"
)

// InitializeRequest is the body of POST /collection/initialize
type InitializeRequest struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	BaseURI   string `json:"base_uri"`
	MaxSupply uint64 `json:"max_supply"` // 0 means unbounded
}

// MintRequest is the body of POST /tokens
type MintRequest struct {
	To  string `json:"to" binding:"required"`
	URI string `json:"uri"`
}

// TransferRequest is the body of POST /tokens/:id/transfer
type TransferRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
	// Safe selects safeTransferFrom; Data is its 0x-prefixed payload
	Safe bool   `json:"safe"`
	Data string `json:"data,omitempty"`
}

// ApproveRequest is the body of POST /tokens/:id/approve; the zero address clears the approval
type ApproveRequest struct {
	To string `json:"to" binding:"required"`
}

// SetApprovalForAllRequest is the body of PUT /operators/:operator
type SetApprovalForAllRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// CollectionResponse is a snapshot of the collection
type CollectionResponse struct {
	Phase       domain.Phase `json:"phase"`
	Owner       string       `json:"owner"`
	Name        string       `json:"name"`
	Symbol      string       `json:"symbol"`
	BaseURI     string       `json:"base_uri"`
	MaxSupply   uint64       `json:"max_supply"`
	TotalMinted uint64       `json:"total_minted"`
}

// NewCollectionResponse converts a domain collection
func NewCollectionResponse(c *domain.Collection) CollectionResponse {
	return CollectionResponse{
		Phase:       c.Phase,
		Owner:       c.Owner.Hex(),
		Name:        c.Name,
		Symbol:      c.Symbol,
		BaseURI:     c.BaseURI,
		MaxSupply:   c.MaxSupply,
		TotalMinted: c.TotalMinted,
	}
}

type OwnerResponse struct {
	Owner string `json:"owner"`
}

type TotalMintedResponse struct {
	TotalMinted uint64 `json:"total_minted"`
}

type MintResponse struct {
	TokenID uint64 `json:"token_id"`
}

// TokenResponse is a registered token with its URI
type TokenResponse struct {
	TokenID uint64 `json:"token_id"`
	Owner   string `json:"owner"`
	URI     string `json:"uri"`
}

type TokenURIResponse struct {
	TokenID uint64 `json:"token_id"`
	URI     string `json:"uri"`
}

type TokenOwnerResponse struct {
	TokenID uint64 `json:"token_id"`
	Owner   string `json:"owner"`
}

type ApprovedResponse struct {
	TokenID  uint64 `json:"token_id"`
	Approved string `json:"approved"`
}

type BalanceResponse struct {
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

type OperatorApprovalResponse struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

type InterfaceResponse struct {
	InterfaceID string `json:"interface_id"`
	Supported   bool   `json:"supported"`
}
