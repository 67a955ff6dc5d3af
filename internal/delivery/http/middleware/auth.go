package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/gin-gonic/gin"
)

const accountKey = "account"

// Authenticator resolves a bearer access token to an active account.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.Account, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth rejects requests without a valid access token and stores the account
// for handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
			return
		}

		account, err := m.auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				log.From(c.Request.Context()).Error("authenticate failed", "err", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(accountKey, account)
		ctx := log.Into(c.Request.Context(), log.From(c.Request.Context()).With("account_id", account.ID))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := CurrentAccount(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
			return
		}
		if !account.Staff() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the account set by RequireAuth.
func CurrentAccount(c *gin.Context) (*domain.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*domain.Account)
	return account, ok && account != nil
}

// SetAccount stores account as the authenticated caller.
func SetAccount(c *gin.Context, account *domain.Account) {
	c.Set(accountKey, account)
}
