package v1

import (
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	public.POST("/users/register", middleware.RateLimitMiddleware(middleware.RegisterRateLimitConfig()), handler.Register)

	users := protected.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.PUT("/me", handler.UpdateMe)
		users.GET("", handler.List)
		users.GET("/job-seekers", handler.listByRole(domain.RoleJobSeeker))
		users.GET("/recruiters", handler.listByRole(domain.RoleRecruiter))
	}
}

// Register godoc
// @Summary      Register an account
// @Description  Creates a job_seeker (default) or recruiter account. Recruiters start unverified
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterInput  true  "Registration details"
// @Success      201   {object}  response.Response{data=domain.UserResponse}
// @Failure      400   {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Registration successful", domain.NewUserResponse(user))
}

// Me godoc
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserResponse}
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", domain.NewUserResponse(user))
}

// UpdateMe godoc
// @Summary      Update my profile
// @Description  Role and verification cannot be changed here
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileInput  true  "Profile fields"
// @Success      200   {object}  response.Response{data=domain.UserResponse}
// @Failure      400   {object}  response.Response
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req domain.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	updated, err := h.userUC.UpdateProfile(c.Request.Context(), user, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", domain.NewUserResponse(updated))
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role         query     string  false  "job_seeker, recruiter or admin"
// @Param        is_verified  query     bool    false  "Verification flag"
// @Success      200          {object}  response.Response{data=[]domain.UserResponse}
// @Failure      400          {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	var filter domain.UserFilter
	if raw := c.Query("role"); raw != "" {
		role := domain.Role(raw)
		if !role.Valid() {
			c.Error(apperror.BadRequest("Invalid role"))
			return
		}
		filter.Role = &role
	}
	verified, ok := queryBool(c, "is_verified")
	if !ok {
		return
	}
	filter.IsVerified = verified

	h.respondUsers(c, filter)
}

// listByRole serves /users/job-seekers and /users/recruiters.
func (h *UserHandler) listByRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.respondUsers(c, domain.UserFilter{Role: &role})
	}
}

func (h *UserHandler) respondUsers(c *gin.Context, filter domain.UserFilter) {
	users, err := h.userUC.ListUsers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", domain.NewUserResponses(users))
}
