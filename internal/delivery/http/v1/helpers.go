package v1

import (
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"strconv"

	"github.com/gin-gonic/gin"
)

// actor returns the authenticated user or pushes 401 onto c.
func actor(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return nil, false
	}
	return user, true
}

// pathID parses a positive int64 path parameter or pushes 400 onto c.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

func queryBool(c *gin.Context, name string) (*bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid " + name))
		return nil, false
	}
	return &v, true
}
