package auth

import (
	"strconv"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carries the account id as the subject and the token type, so a refresh
// token is never accepted where an access token is expected.
type Claims struct {
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// AccountID returns the subject as an account id.
func (c *Claims) AccountID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return id, nil
}

type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL(),
		refreshTTL:    cfg.RefreshTTL(),
		now:           time.Now,
	}
}

// Issue signs a fresh access and refresh token for the account.
func (m *TokenManager) Issue(accountID int) (TokenPair, error) {
	refresh, err := m.sign(accountID, RefreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	access, err := m.sign(accountID, AccessToken)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Refresh: refresh, Access: access}, nil
}

// IssueAccess signs a new access token only.
func (m *TokenManager) IssueAccess(accountID int) (string, error) {
	return m.sign(accountID, AccessToken)
}

func (m *TokenManager) sign(accountID int, typ TokenType) (string, error) {
	secret, ttl := m.accessSecret, m.accessTTL
	if typ == RefreshToken {
		secret, ttl = m.refreshSecret, m.refreshTTL
	}

	now := m.now()
	claims := Claims{
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.Itoa(accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *TokenManager) ParseAccess(token string) (*Claims, error) {
	return m.parse(token, AccessToken)
}

func (m *TokenManager) ParseRefresh(token string) (*Claims, error) {
	return m.parse(token, RefreshToken)
}

func (m *TokenManager) parse(token string, want TokenType) (*Claims, error) {
	secret := m.accessSecret
	if want == RefreshToken {
		secret = m.refreshSecret
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.TokenType != want || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
