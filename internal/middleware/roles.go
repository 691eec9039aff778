package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole bloqueia a rota para quem não tem um dos papéis listados.
// Resposta fixa de acesso negado, igual para qualquer papel rejeitado.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		roleStr, ok := role.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "access_denied",
				"message":    "Acesso negado.",
			})
			return
		}

		if _, ok := allowed[roleStr]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "access_denied",
				"message":    "Acesso negado.",
			})
			return
		}

		c.Next()
	}
}
