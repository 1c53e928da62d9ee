package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-nft-issuer/internal/api/middleware"
	"github.com/feral-file/ff-nft-issuer/internal/api/rest/dto"
	apierrors "github.com/feral-file/ff-nft-issuer/internal/api/shared/errors"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/minter"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetCollection returns the collection snapshot
	// GET /api/v1/collection
	GetCollection(c *gin.Context)

	// InitializeCollection sets the caller as admin (requires authentication)
	// POST /api/v1/collection/initialize
	InitializeCollection(c *gin.Context)

	// GetOwner returns the collection admin
	// GET /api/v1/collection/owner
	GetOwner(c *gin.Context)

	// GetTotalMinted returns the number of minted tokens
	// GET /api/v1/collection/total-minted
	GetTotalMinted(c *gin.Context)

	// MintToken mints the next token (requires authentication)
	// POST /api/v1/tokens
	MintToken(c *gin.Context)

	// GetToken returns the owner and URI of a token
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// GetTokenURI returns the URI of a token
	// GET /api/v1/tokens/:id/uri
	GetTokenURI(c *gin.Context)

	// GetTokenOwner returns the owner of a token
	// GET /api/v1/tokens/:id/owner
	GetTokenOwner(c *gin.Context)

	// GetApproved returns the approved address of a token
	// GET /api/v1/tokens/:id/approved
	GetApproved(c *gin.Context)

	// TransferToken moves a token, optionally through safeTransferFrom (requires authentication)
	// POST /api/v1/tokens/:id/transfer
	TransferToken(c *gin.Context)

	// ApproveToken approves an address for a token (requires authentication)
	// POST /api/v1/tokens/:id/approve
	ApproveToken(c *gin.Context)

	// GetBalance returns the number of tokens of an owner
	// GET /api/v1/owners/:address/balance
	GetBalance(c *gin.Context)

	// GetOperatorApproval reports whether operator may manage all tokens of address
	// GET /api/v1/owners/:address/operators/:operator
	GetOperatorApproval(c *gin.Context)

	// SetOperatorApproval grants or revokes an operator for the caller (requires authentication)
	// PUT /api/v1/operators/:operator
	SetOperatorApproval(c *gin.Context)

	// SupportsInterface reports ERC-165 support
	// GET /api/v1/interfaces/:interface_id
	SupportsInterface(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	minter minter.Minter
}

// NewHandler creates a new REST API handler
func NewHandler(m minter.Minter) Handler {
	return &handler{
		minter: m,
	}
}

func (h *handler) GetCollection(c *gin.Context) {
	collection, err := h.minter.Collection(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get collection")
		return
	}

	c.JSON(http.StatusOK, dto.NewCollectionResponse(collection))
}

func (h *handler) InitializeCollection(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.minter.Initialize(c.Request.Context(), caller, minter.InitializeInput{
		Name:      req.Name,
		Symbol:    req.Symbol,
		BaseURI:   req.BaseURI,
		MaxSupply: req.MaxSupply,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to initialize collection")
		return
	}

	collection, err := h.minter.Collection(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get collection")
		return
	}

	c.JSON(http.StatusCreated, dto.NewCollectionResponse(collection))
}

func (h *handler) GetOwner(c *gin.Context) {
	owner, err := h.minter.GetOwner(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get owner")
		return
	}

	c.JSON(http.StatusOK, dto.OwnerResponse{Owner: owner.Hex()})
}

func (h *handler) GetTotalMinted(c *gin.Context) {
	total, err := h.minter.TotalMinted(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get total minted")
		return
	}

	c.JSON(http.StatusOK, dto.TotalMintedResponse{TotalMinted: total})
}

func (h *handler) MintToken(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	tokenID, err := h.minter.Mint(c.Request.Context(), to, req.URI)
	if err != nil {
		respondDomainError(c, err, "Failed to mint token")
		return
	}

	c.JSON(http.StatusCreated, dto.MintResponse{TokenID: tokenID})
}

func (h *handler) GetToken(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	owner, err := h.minter.OwnerOf(ctx, tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token")
		return
	}

	uri, err := h.minter.TokenURI(ctx, tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token uri")
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		TokenID: tokenID,
		Owner:   owner.Hex(),
		URI:     uri,
	})
}

func (h *handler) GetTokenURI(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	uri, err := h.minter.TokenURI(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token uri")
		return
	}

	c.JSON(http.StatusOK, dto.TokenURIResponse{TokenID: tokenID, URI: uri})
}

func (h *handler) GetTokenOwner(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	owner, err := h.minter.OwnerOf(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get token owner")
		return
	}

	c.JSON(http.StatusOK, dto.TokenOwnerResponse{TokenID: tokenID, Owner: owner.Hex()})
}

func (h *handler) GetApproved(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	approved, err := h.minter.GetApproved(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, "Failed to get approved address")
		return
	}

	c.JSON(http.StatusOK, dto.ApprovedResponse{TokenID: tokenID, Approved: approved.Hex()})
}

func (h *handler) TransferToken(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	from, ok := parseAddress(c, "from", req.From)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var err error
	if req.Safe {
		var data []byte
		if req.Data != "" {
			data, err = hexutil.Decode(req.Data)
			if err != nil {
				respondValidationError(c, fmt.Sprintf("invalid data: %s", err))
				return
			}
		}
		err = h.minter.SafeTransferFromWithData(ctx, caller, from, to, tokenID, data)
	} else {
		if req.Data != "" {
			respondValidationError(c, "data requires safe transfer")
			return
		}
		err = h.minter.TransferFrom(ctx, caller, from, to, tokenID)
	}
	if err != nil {
		respondDomainError(c, err, "Failed to transfer token")
		return
	}

	c.JSON(http.StatusOK, dto.TokenOwnerResponse{TokenID: tokenID, Owner: to.Hex()})
}

func (h *handler) ApproveToken(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	if err := h.minter.Approve(c.Request.Context(), caller, to, tokenID); err != nil {
		respondDomainError(c, err, "Failed to approve token")
		return
	}

	c.JSON(http.StatusOK, dto.ApprovedResponse{TokenID: tokenID, Approved: to.Hex()})
}

func (h *handler) GetBalance(c *gin.Context) {
	owner, ok := parseAddress(c, "address", c.Param("address"))
	if !ok {
		return
	}

	balance, err := h.minter.BalanceOf(c.Request.Context(), owner)
	if err != nil {
		respondDomainError(c, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Owner: owner.Hex(), Balance: balance})
}

func (h *handler) GetOperatorApproval(c *gin.Context) {
	owner, ok := parseAddress(c, "address", c.Param("address"))
	if !ok {
		return
	}
	operator, ok := parseAddress(c, "operator", c.Param("operator"))
	if !ok {
		return
	}

	approved, err := h.minter.IsApprovedForAll(c.Request.Context(), owner, operator)
	if err != nil {
		respondDomainError(c, err, "Failed to get operator approval")
		return
	}

	c.JSON(http.StatusOK, dto.OperatorApprovalResponse{
		Owner:    owner.Hex(),
		Operator: operator.Hex(),
		Approved: approved,
	})
}

func (h *handler) SetOperatorApproval(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	operator, ok := parseAddress(c, "operator", c.Param("operator"))
	if !ok {
		return
	}

	var req dto.SetApprovalForAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.minter.SetApprovalForAll(c.Request.Context(), caller, operator, *req.Approved); err != nil {
		respondDomainError(c, err, "Failed to set operator approval")
		return
	}

	c.JSON(http.StatusOK, dto.OperatorApprovalResponse{
		Owner:    caller.Hex(),
		Operator: operator.Hex(),
		Approved: *req.Approved,
	})
}

func (h *handler) SupportsInterface(c *gin.Context) {
	interfaceID, err := domain.ParseInterfaceID(c.Param("interface_id"))
	if err != nil {
		respondBadRequest(c, "Invalid interface id", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.InterfaceResponse{
		InterfaceID: interfaceID.String(),
		Supported:   h.minter.SupportsInterface(c.Request.Context(), interfaceID),
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-nft-issuer-api",
	})
}

// requireCaller returns the authenticated caller or responds with 401
func requireCaller(c *gin.Context) (common.Address, bool) {
	caller, ok := middleware.CallerAddress(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Caller address is required"))
		return common.Address{}, false
	}
	return caller, true
}

// parseTokenID parses the :id path parameter as a decimal uint64
func parseTokenID(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	tokenID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token id", fmt.Sprintf("%q is not a decimal uint64", raw))
		return 0, false
	}
	return tokenID, true
}

// parseAddress parses a hex address, responding with 400 when malformed
func parseAddress(c *gin.Context, field string, value string) (common.Address, bool) {
	address, err := domain.ParseAddress(value)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid %s", field), err.Error())
		return common.Address{}, false
	}
	return address, true
}
