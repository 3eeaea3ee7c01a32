package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// CreateContent godoc
// @Summary Add a content item to a course
// @Tags course-content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ContentRequest true "Content"
// @Success 201 {object} util.Response{data=model.CourseContent}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/course-content [post]
func (c *ContentController) CreateContent(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.ContentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	content, err := c.ContentService.Create(user.ID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Content created successfully", content)
}

// ListContents godoc
// @Summary Content items of a course in display order
// @Tags course-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} util.Response{data=[]model.CourseContent}
// @Router /api/course-content/{id} [get]
func (c *ContentController) ListContents(ctx *gin.Context) {
	contents, err := c.ContentService.ByCourse(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, contents)
}

// UpdateContent godoc
// @Summary Update a content item
// @Tags course-content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Content ID"
// @Param body body service.ContentRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.CourseContent}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/course-content/{id} [put]
func (c *ContentController) UpdateContent(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.ContentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	content, err := c.ContentService.Update(user.ID, ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Content updated successfully", content)
}

// DeleteContent godoc
// @Summary Delete a content item
// @Tags course-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Content ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/course-content/{id} [delete]
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	if err := c.ContentService.Delete(user.ID, ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Content deleted successfully", nil)
}
