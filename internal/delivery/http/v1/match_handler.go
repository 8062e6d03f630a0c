package v1

import (
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchingUC domain.MatchingUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchingUC domain.MatchingUsecase) {
	handler := &MatchHandler{matchingUC: matchingUC}

	match := protected.Group("/match")
	{
		match.GET("/jobs-for-me", handler.JobsForMe)
		match.GET("/skill-analysis", handler.SkillAnalysis)
	}
}

// JobsForMe godoc
// @Summary      Suggest jobs for the caller
// @Description  Ranks active jobs by overlap with the job seeker's skills. At most 10 are returned; total_matches_found counts all matches
// @Tags         match
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.MatchResultResponse}
// @Failure      400  {object}  response.Response
// @Router       /match/jobs-for-me [get]
// @Security     BearerAuth
func (h *MatchHandler) JobsForMe(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	result, err := h.matchingUC.MatchJobsForSeeker(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}

	msg := result.Message
	if msg == "" {
		msg = "Job matches retrieved"
	}
	response.Success(c, http.StatusOK, msg, domain.NewMatchResultResponse(result))
}

// SkillAnalysis godoc
// @Summary      Summarise the caller's skills
// @Tags         match
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SkillAnalysis}
// @Failure      400  {object}  response.Response
// @Router       /match/skill-analysis [get]
// @Security     BearerAuth
func (h *MatchHandler) SkillAnalysis(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	analysis, err := h.matchingUC.SkillAnalysis(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill analysis retrieved", analysis)
}
