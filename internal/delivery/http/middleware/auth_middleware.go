package middleware

import (
	"net/http"
	"strings"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(tokens *auth.TokenService, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		email, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Fetch fresh user data from DB. A valid token whose subject no
		// longer exists locally is treated as unauthorized.
		user, err := authUC.GetCurrentUser(c.Request.Context(), email)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)

		c.Next()
	}
}
