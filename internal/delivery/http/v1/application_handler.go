package v1

import (
	"errors"
	"io"
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}
	writeLimit := middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig())

	jobs := r.Group("/jobs")
	{
		jobs.POST("/:id/apply", writeLimit, handler.Apply)
		jobs.GET("/:id/applications", handler.ListJobApplications)
	}

	applications := r.Group("/applications")
	{
		applications.GET("", handler.ListVisible)
		applications.GET("/my", handler.ListMine)
		applications.GET("/:id", handler.GetDetail)
		applications.PATCH("/:id/status", writeLimit, handler.UpdateStatus)
	}
}

// UpdateStatusRequest is the request payload for changing an application's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Job seekers only. One application per job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Job ID"
// @Param        body  body      domain.ApplyInput  false "Application data"
// @Success      201   {object}  response.Response{data=domain.ApplicationResponse}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	// Body is optional
	var req domain.ApplyInput
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), user, jobID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", domain.NewApplicationResponse(app))
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Job creator or admin. Any status may follow any other
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.ApplicationResponse}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), user, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", domain.NewApplicationResponse(app))
}

// GetDetail godoc
// @Summary      Get application
// @Description  Visible to the applicant, the job creator and admins
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.ApplicationResponse}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetail(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), user, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application retrieved", domain.NewApplicationResponse(app))
}

// ListVisible godoc
// @Summary      List applications
// @Description  Job seekers see their own; recruiters and admins see those on their jobs
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ApplicationResponse}
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListVisible(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	apps, err := h.applicationUC.ListVisible(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", domain.NewApplicationResponses(apps))
}

// ListMine godoc
// @Summary      List my applications
// @Description  Job seekers only, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ApplicationResponse}
// @Failure      403  {object}  response.Response
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	apps, err := h.applicationUC.ListForSeeker(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", domain.NewApplicationResponses(apps))
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Job creator or admin only
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobApplications}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.applicationUC.ListForJobOwner(c.Request.Context(), user, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", out)
}
