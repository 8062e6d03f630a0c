package v1

import (
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userUC domain.UserUsecase
	jobUC  domain.JobUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, userUC domain.UserUsecase, jobUC domain.JobUsecase) {
	handler := &AdminHandler{userUC: userUC, jobUC: jobUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		// User moderation
		admin.PUT("/recruiters/:id/verify", handler.VerifyRecruiter)
		admin.DELETE("/users/:id", handler.DeleteUser)

		// Job moderation
		admin.POST("/jobs", handler.CreateJob)
		admin.DELETE("/jobs/:id", handler.DeleteJob)
	}
}

// AdminCreateJobRequest is a job plus an optional owner. The admin owns the
// job when CreatedBy is omitted.
type AdminCreateJobRequest struct {
	domain.JobInput
	CreatedBy *int64 `json:"created_by" binding:"omitempty,gt=0"`
}

// VerifyRecruiter godoc
// @Summary      Verify a recruiter
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Recruiter user ID"
// @Success      200  {object}  response.Response{data=domain.UserResponse}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/recruiters/{id}/verify [put]
func (h *AdminHandler) VerifyRecruiter(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recruiter, err := h.userUC.VerifyRecruiter(c.Request.Context(), user, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter "+recruiter.Email+" verified", domain.NewUserResponse(recruiter))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes the user with their jobs and applications. Admins cannot delete themselves
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.userUC.DeleteUser(c.Request.Context(), user, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User "+deleted.Email+" deleted", nil)
}

// CreateJob godoc
// @Summary      Create a job as admin
// @Description  Optionally on behalf of another user via created_by
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      AdminCreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.JobResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs [post]
func (h *AdminHandler) CreateJob(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req AdminCreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.AdminCreateJob(c.Request.Context(), user, req.CreatedBy, req.JobInput)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", domain.NewJobResponse(job))
}

// DeleteJob godoc
// @Summary      Delete any job
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.DeleteJob(c.Request.Context(), user, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job '"+job.Title+"' deleted", nil)
}
