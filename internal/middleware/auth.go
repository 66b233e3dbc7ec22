package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/usecase/auth"
)

const ContextActor = "actor"

// AuthMiddleware accepts "Authorization: Bearer <jwt>" and stores the
// session actor on the context. The token is trusted until it expires; the
// user row is not consulted.
func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Token não informado.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token inválido ou expirado.")
			return
		}

		actor := claims.Actor()
		if !actor.Role.Valid() {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_claims", "Token inválido ou expirado.")
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// Actor returns the authenticated caller. Only valid behind AuthMiddleware.
func Actor(c *gin.Context) user.Actor {
	return c.MustGet(ContextActor).(user.Actor)
}

// RequireRoles lets through only the given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		status, message := httperr.Describe("forbidden")
		httperr.Abort(c, status, "forbidden", message)
	}
}

func RequireStaff() gin.HandlerFunc {
	return RequireRoles(models.RoleCompany, models.RoleEmployee)
}
