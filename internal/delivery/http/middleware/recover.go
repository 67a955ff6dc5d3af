package middleware

import (
	"net/http"

	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/gin-gonic/gin"
)

// Recover turns a panic into a logged 500.
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.From(c.Request.Context()).Error("panic recovered", "panic", rec, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
