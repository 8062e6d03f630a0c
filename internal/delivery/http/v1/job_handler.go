package v1

import (
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - no authentication required
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes - authentication required
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.GET("/mine", handler.ListMine)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.PATCH("/:id/toggle-active", handler.ToggleActive)
	}
}

type PaginatedJobs struct {
	Items    []domain.JobResponse `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type ToggleActiveResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"is_active"`
}

// Search godoc
// @Summary      Search jobs
// @Description  Public job listing. q matches title, description, category and location
// @Tags         jobs
// @Produce      json
// @Param        q          query     string  false  "Free text"
// @Param        location   query     string  false  "Location contains"
// @Param        category   query     string  false  "Category contains"
// @Param        job_type   query     string  false  "Exact job type"
// @Param        is_active  query     bool    false  "Active flag"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=PaginatedJobs}
// @Failure      400        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	isActive, ok := queryBool(c, "is_active")
	if !ok {
		return
	}
	filter := domain.JobFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Location: strings.TrimSpace(c.Query("location")),
		Category: strings.TrimSpace(c.Query("category")),
		JobType:  domain.JobType(c.Query("job_type")),
		IsActive: isActive,
	}

	jobs, total, err := h.jobUC.SearchJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = min(max(pageSize, 10), 100)
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", PaginatedJobs{
		Items:    domain.NewJobResponses(jobs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobResponse}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", domain.NewJobResponse(job))
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a job posting owned by the caller
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.JobResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req domain.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), user, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", domain.NewJobResponse(job))
}

// ListMine godoc
// @Summary      List my jobs
// @Description  Jobs created by the caller, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobResponse}
// @Failure      401  {object}  response.Response
// @Router       /jobs/mine [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", domain.NewJobResponses(jobs))
}

// Update godoc
// @Summary      Update a job
// @Description  Creator or admin only
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int              true  "Job ID"
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      200  {object}  response.Response{data=domain.JobResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), user, id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", domain.NewJobResponse(job))
}

// Delete godoc
// @Summary      Delete a job
// @Description  Creator or admin only. Removes the job's applications too
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.jobUC.DeleteJob(c.Request.Context(), user, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ToggleActive godoc
// @Summary      Toggle a job's active flag
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=ToggleActiveResponse}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/toggle-active [patch]
// @Security     BearerAuth
func (h *JobHandler) ToggleActive(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.ToggleActive(c.Request.Context(), user, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", ToggleActiveResponse{ID: job.ID, IsActive: job.IsActive})
}
