package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-nft-issuer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Collection endpoints
		v1.GET("/collection", handler.GetCollection)
		v1.GET("/collection/owner", handler.GetOwner)
		v1.GET("/collection/total-minted", handler.GetTotalMinted)
		v1.POST("/collection/initialize", auth, handler.InitializeCollection)

		// Token endpoints (public read access, authenticated writes)
		v1.POST("/tokens", auth, handler.MintToken)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.GET("/tokens/:id/uri", handler.GetTokenURI)
		v1.GET("/tokens/:id/owner", handler.GetTokenOwner)
		v1.GET("/tokens/:id/approved", handler.GetApproved)
		v1.POST("/tokens/:id/transfer", auth, handler.TransferToken)
		v1.POST("/tokens/:id/approve", auth, handler.ApproveToken)

		// Owner endpoints
		v1.GET("/owners/:address/balance", handler.GetBalance)
		v1.GET("/owners/:address/operators/:operator", handler.GetOperatorApproval)

		// Operator approval of the caller
		v1.PUT("/operators/:operator", auth, handler.SetOperatorApproval)

		// ERC-165
		v1.GET("/interfaces/:interface_id", handler.SupportsInterface)
	}
}
