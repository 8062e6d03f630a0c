package middleware

import (
	"fmt"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates an HS256 bearer token whose "sub" claim is the
// numeric user id, loads that user and stores it under domain.KeyUser.
func AuthMiddleware(secret string, userUC domain.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if authHeader == "" || tokenString == "" || tokenString == authHeader {
			response.Abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if secret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			logger.Log.Debug("token validation failed", "error", err)
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid claims")
			return
		}
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid claims")
			return
		}

		// Load the user on every request so role and deletion take effect immediately
		user, err := userUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindNotFound {
				response.Abort(c, http.StatusUnauthorized, "User not found")
				return
			}
			// Store failures are rendered by ErrorHandler, not reported as bad credentials
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUser), user)
		c.Next()
	}
}

// CurrentUser returns the actor stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(string(domain.KeyUser))
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

// RequireRole aborts with 403 unless the actor has one of roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "Insufficient permissions")
	}
}
