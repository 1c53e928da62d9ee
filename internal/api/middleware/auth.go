package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-nft-issuer/internal/api/shared/errors"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
)

const (
	AUTH_TYPE_KEY      = "auth_type"
	JWT_CLAIMS_KEY     = "jwt_claims"
	CALLER_ADDRESS_KEY = "caller_address"

	// CALLER_ADDRESS_HEADER names the acting address for API key requests
	CALLER_ADDRESS_HEADER = "X-Caller-Address"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success  bool
	AuthType string // "jwt" or "apikey"
	Claims   *jwt.RegisteredClaims
	// Caller is the address the request acts as: the JWT subject, or the X-Caller-Address header with an API key
	Caller common.Address
	Error  error
}

// Authenticate validates the Authorization header and resolves the caller address
func Authenticate(authHeader string, callerHeader string, cfg AuthConfig) AuthResult {
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := parts[1]

	switch authType {
	case "bearer":
		claims, err := validateJWT(credentials, cfg.JWTPublicKey)
		if err != nil {
			result.Error = err
			return result
		}
		caller, err := domain.ParseAddress(claims.Subject)
		if err != nil {
			result.Error = fmt.Errorf("token subject is not an address: %w", err)
			return result
		}
		result.AuthType = AUTH_TYPE_JWT
		result.Claims = claims
		result.Caller = caller

	case "apikey":
		if err := validateAPIKey(credentials, apiKeyMap); err != nil {
			result.Error = err
			return result
		}
		if callerHeader == "" {
			result.Error = fmt.Errorf("missing %s header", CALLER_ADDRESS_HEADER)
			return result
		}
		caller, err := domain.ParseAddress(callerHeader)
		if err != nil {
			result.Error = fmt.Errorf("invalid %s header: %w", CALLER_ADDRESS_HEADER, err)
			return result
		}
		result.AuthType = AUTH_TYPE_APIKEY
		result.Caller = caller

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	result.Success = true
	return result
}

// Auth returns a gin middleware for authentication
// It supports both JWT (Bearer token) and API Key authentication
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		result := Authenticate(c.GetHeader("Authorization"), c.GetHeader(CALLER_ADDRESS_HEADER), cfg)

		if !result.Success {
			logger.WarnCtx(ctx, "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		c.Set(AUTH_TYPE_KEY, result.AuthType)
		c.Set(CALLER_ADDRESS_KEY, result.Caller)
		if result.Claims != nil {
			c.Set(JWT_CLAIMS_KEY, result.Claims)
		}

		c.Request = c.Request.WithContext(logger.WithFields(ctx, zap.String("caller", result.Caller.Hex())))
		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// CallerAddress returns the authenticated caller set by Auth
func CallerAddress(c *gin.Context) (common.Address, bool) {
	value, ok := c.Get(CALLER_ADDRESS_KEY)
	if !ok {
		return common.Address{}, false
	}
	caller, ok := value.(common.Address)
	return caller, ok
}

// validateJWT validates a JWT token with RSA signature and returns claims
func validateJWT(tokenString string, publicKeyPEM string) (*jwt.RegisteredClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	now := time.Now()
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return nil, errors.New("token has expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.After(now) {
		return nil, errors.New("token not yet valid")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// validateAPIKey validates an API key
func validateAPIKey(apiKey string, validKeys map[string]bool) error {
	if len(validKeys) == 0 {
		return errors.New("no API keys configured")
	}

	if !validKeys[apiKey] {
		return errors.New("invalid API key")
	}

	return nil
}
