package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-nft-issuer/internal/api/middleware"
	"github.com/feral-file/ff-nft-issuer/internal/api/rest"
	"github.com/feral-file/ff-nft-issuer/internal/api/rest/dto"
	apierrors "github.com/feral-file/ff-nft-issuer/internal/api/shared/errors"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/minter"
	"github.com/feral-file/ff-nft-issuer/internal/mocks"
)

const testAPIKey = "test-api-key"

var (
	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

type testHandlerMocks struct {
	ctrl   *gomock.Controller
	minter *mocks.MockMinter
	router *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMinter(ctrl)

	return &testHandlerMocks{
		ctrl:   ctrl,
		minter: m,
		router: newTestRouter(m),
	}
}

func newTestRouter(m minter.Minter) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	rest.SetupRoutes(router, rest.NewHandler(m), middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	return router
}

// doRequest performs a request; a non-zero caller authenticates with the test API key
func doRequest(router *gin.Engine, method, path string, body interface{}, caller common.Address) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != (common.Address{}) {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
		req.Header.Set(middleware.CALLER_ADDRESS_HEADER, caller.Hex())
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	mocks := setupTestHandler(t)
	defer mocks.ctrl.Finish()

	w := doRequest(mocks.router, http.MethodGet, "/health", nil, common.Address{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestDomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{"nonexistent token", domain.ErrNonexistentToken, http.StatusNotFound, apierrors.ErrCodeNotFound},
		{"already initialized", domain.ErrAlreadyInitialized, http.StatusConflict, apierrors.ErrCodeConflict},
		{"not initialized", domain.ErrNotInitialized, http.StatusConflict, apierrors.ErrCodeConflict},
		{"supply cap", domain.ErrSupplyCapReached, http.StatusConflict, apierrors.ErrCodeConflict},
		{"token exists", domain.ErrTokenAlreadyExists, http.StatusConflict, apierrors.ErrCodeConflict},
		{"invalid receiver", domain.ErrInvalidReceiver, http.StatusBadRequest, apierrors.ErrCodeBadRequest},
		{"invalid uri", domain.ErrInvalidTokenURI, http.StatusBadRequest, apierrors.ErrCodeBadRequest},
		{"wrapped insufficient approval", fmt.Errorf("%w: nope", domain.ErrInsufficientApproval), http.StatusForbidden, apierrors.ErrCodeForbidden},
		{"incorrect owner", domain.ErrIncorrectOwner, http.StatusForbidden, apierrors.ErrCodeForbidden},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestHandler(t)
			defer mocks.ctrl.Finish()

			mocks.minter.EXPECT().Mint(gomock.Any(), bob, "ipfs://Qm1").Return(uint64(0), tt.err)

			w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens", dto.MintRequest{To: bob.Hex(), URI: "ipfs://Qm1"}, alice)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}

func TestMintToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		mocks.minter.EXPECT().Mint(gomock.Any(), bob, "ipfs://Qm1").Return(uint64(4), nil)

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens", dto.MintRequest{To: bob.Hex(), URI: "ipfs://Qm1"}, alice)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.MintResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(4), resp.TokenID)
	})

	t.Run("requires authentication", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens", dto.MintRequest{To: bob.Hex()}, common.Address{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed receiver", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens", dto.MintRequest{To: "0xnope"}, alice)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeBadRequest, decodeError(t, w).Code)
	})

	t.Run("missing receiver", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens", map[string]string{"uri": "ipfs://Qm1"}, alice)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})
}

func TestInitializeCollectionUsesCaller(t *testing.T) {
	mocks := setupTestHandler(t)
	defer mocks.ctrl.Finish()

	input := minter.InitializeInput{Name: "Demo", Symbol: "DEMO", BaseURI: "ipfs://base/", MaxSupply: 3}
	gomock.InOrder(
		mocks.minter.EXPECT().Initialize(gomock.Any(), alice, input).Return(nil),
		mocks.minter.EXPECT().Collection(gomock.Any()).Return(&domain.Collection{
			Phase:     domain.PhaseActive,
			Owner:     alice,
			Name:      "Demo",
			Symbol:    "DEMO",
			BaseURI:   "ipfs://base/",
			MaxSupply: 3,
		}, nil),
	)

	w := doRequest(mocks.router, http.MethodPost, "/api/v1/collection/initialize", dto.InitializeRequest{
		Name:      "Demo",
		Symbol:    "DEMO",
		BaseURI:   "ipfs://base/",
		MaxSupply: 3,
	}, alice)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CollectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PhaseActive, resp.Phase)
	assert.Equal(t, alice.Hex(), resp.Owner)
}

func TestTokenIDValidation(t *testing.T) {
	mocks := setupTestHandler(t)
	defer mocks.ctrl.Finish()

	for _, path := range []string{
		"/api/v1/tokens/abc",
		"/api/v1/tokens/-1/owner",
		"/api/v1/tokens/18446744073709551616/uri",
	} {
		w := doRequest(mocks.router, http.MethodGet, path, nil, common.Address{})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestTransferToken(t *testing.T) {
	t.Run("plain transfer", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		mocks.minter.EXPECT().TransferFrom(gomock.Any(), alice, alice, bob, uint64(1)).Return(nil)

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens/1/transfer", dto.TransferRequest{From: alice.Hex(), To: bob.Hex()}, alice)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("safe transfer with data", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		mocks.minter.EXPECT().SafeTransferFromWithData(gomock.Any(), alice, alice, bob, uint64(1), []byte{0xca, 0xfe}).Return(nil)

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens/1/transfer", dto.TransferRequest{From: alice.Hex(), To: bob.Hex(), Safe: true, Data: "0xcafe"}, alice)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("data without safe", func(t *testing.T) {
		mocks := setupTestHandler(t)
		defer mocks.ctrl.Finish()

		w := doRequest(mocks.router, http.MethodPost, "/api/v1/tokens/1/transfer", dto.TransferRequest{From: alice.Hex(), To: bob.Hex(), Data: "0xcafe"}, alice)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetOperatorApprovalRequiresFlag(t *testing.T) {
	mocks := setupTestHandler(t)
	defer mocks.ctrl.Finish()

	w := doRequest(mocks.router, http.MethodPut, "/api/v1/operators/"+bob.Hex(), map[string]string{}, alice)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mocks.minter.EXPECT().SetApprovalForAll(gomock.Any(), alice, bob, false).Return(nil)
	approved := false
	w = doRequest(mocks.router, http.MethodPut, "/api/v1/operators/"+bob.Hex(), dto.SetApprovalForAllRequest{Approved: &approved}, alice)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSupportsInterface(t *testing.T) {
	mocks := setupTestHandler(t)
	defer mocks.ctrl.Finish()

	mocks.minter.EXPECT().SupportsInterface(gomock.Any(), domain.InterfaceIDERC721).Return(true)

	w := doRequest(mocks.router, http.MethodGet, "/api/v1/interfaces/0x80ac58cd", nil, common.Address{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.InterfaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Supported)
	assert.Equal(t, "0x80ac58cd", resp.InterfaceID)

	w = doRequest(mocks.router, http.MethodGet, "/api/v1/interfaces/0x80", nil, common.Address{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
