// Package security provides access-token validation for the API surface.
// Identity issuance lives in the external auth service; this package only
// verifies tokens and extracts the owner identity the plan store trusts.
package security

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartdiet/v1/internal/infrastructure/config"
)

// AuthService validates bearer tokens and tracks revocations
type AuthService struct {
	config      *config.Config
	logger      *zap.Logger
	redisClient *redis.Client
	jwtSecret   []byte
}

// NewAuthService creates a new authentication service. redisClient may be
// nil, in which case revocation checks are skipped.
func NewAuthService(cfg *config.Config, logger *zap.Logger, redisClient *redis.Client) *AuthService {
	return &AuthService{
		config:      cfg,
		logger:      logger,
		redisClient: redisClient,
		jwtSecret:   []byte(cfg.Auth.JWTSecret),
	}
}

// TokenType represents different types of JWT tokens
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims represents JWT claims structure
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a new access token. It exists for tests and
// local development; production tokens come from the identity service
// sharing the same secret.
func (a *AuthService) GenerateAccessToken(userID, email string, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Roles:     roles,
		TokenType: AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.config.Auth.Issuer,
			Subject:   userID,
			Audience:  []string{a.config.Auth.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(a.config.Auth.JWTExpiration)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a token of the expected type,
// rejecting revoked tokens when a revocation store is configured.
// Issuer and audience claims are enforced when configured.
func (a *AuthService) ValidateToken(ctx context.Context, tokenString string, expected TokenType) (*Claims, error) {
	var opts []jwt.ParserOption
	if a.config.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.config.Auth.Issuer))
	}
	if a.config.Auth.Audience != "" {
		opts = append(opts, jwt.WithAudience(a.config.Auth.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.jwtSecret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != expected {
		return nil, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("token carries no user identity")
	}

	revoked, err := a.isRevoked(ctx, claims.ID)
	if err != nil {
		a.logger.Warn("Revocation check failed, rejecting token", zap.Error(err))
		return nil, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("token has been revoked")
	}

	return claims, nil
}

// RevokeToken adds a token to the revocation list until its natural
// expiry. A no-op when no revocation store is configured.
func (a *AuthService) RevokeToken(ctx context.Context, claims *Claims) error {
	if a.redisClient == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	key := revocationKey(claims.ID)
	if err := a.redisClient.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}

	a.logger.Info("Token revoked",
		zap.String("token_id", claims.ID),
		zap.String("user_id", claims.UserID),
	)

	return nil
}

func (a *AuthService) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	if a.redisClient == nil || tokenID == "" {
		return false, nil
	}

	_, err := a.redisClient.Get(ctx, revocationKey(tokenID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func revocationKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

// NewRedisClient connects the revocation store. Returns nil when Redis is
// not configured.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Host == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
}
