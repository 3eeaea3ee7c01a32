package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// MarkComplete godoc
// @Summary Mark a content item as completed
// @Description Repeated calls answer 200 "Already marked as completed".
// @Tags course-progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CompleteRequest true "Completed item"
// @Success 200 {object} util.Response
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/course-progress/complete [post]
func (c *ProgressController) MarkComplete(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.CompleteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := c.ProgressService.MarkComplete(user.ID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if !created {
		util.SuccessMessage(ctx, "Already marked as completed", nil)
		return
	}
	util.Created(ctx, "Progress saved", nil)
}

// Completed godoc
// @Summary Completed content ids and percentage for a course
// @Tags course-progress
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response{data=service.CourseCompletion}
// @Router /api/course-progress/{courseId}/completed [get]
func (c *ProgressController) Completed(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	completion, err := c.ProgressService.Completed(user.ID, ctx.Param("courseId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, completion)
}
