package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Description Every enrolled student receives a notification and an email.
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AssignmentRequest true "Assignment"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.AssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.AssignmentService.Create(ctx.Request.Context(), user.ID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Assignment created successfully", assignment)
}

// CourseAssignments godoc
// @Summary Assignments of a course, soonest due first
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) CourseAssignments(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ByCourse(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// TeacherAssignments godoc
// @Summary Assignments across all of the caller's courses
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/assignments/teacher-assignments [get]
func (c *AssignmentController) TeacherAssignments(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	assignments, err := c.AssignmentService.ByTeacher(user.ID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignments": assignments})
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Param body body service.AssignmentRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.AssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.AssignmentService.Update(user.ID, ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Assignment updated successfully", assignment)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	if err := c.AssignmentService.Delete(user.ID, ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Assignment deleted successfully", nil)
}
