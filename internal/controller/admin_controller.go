package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// PendingTeachers godoc
// @Summary Teachers waiting for approval
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/pending-teachers [get]
func (c *AdminController) PendingTeachers(ctx *gin.Context) {
	teachers, err := c.AdminService.PendingTeachers()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, teachers)
}

// ApproveTeacher godoc
// @Summary Approve a teacher
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/admin/approve/{id} [put]
func (c *AdminController) ApproveTeacher(ctx *gin.Context) {
	teacher, err := c.AdminService.ApproveTeacher(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Teacher approved successfully", teacher)
}

// DeclineTeacher godoc
// @Summary Decline and remove an unapproved teacher
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/decline/{id} [delete]
func (c *AdminController) DeclineTeacher(ctx *gin.Context) {
	if err := c.AdminService.DeclineTeacher(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Teacher declined and removed successfully", nil)
}

// PromoteTeacher godoc
// @Summary Promote a teacher to admin
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/admin/promote/{id} [put]
func (c *AdminController) PromoteTeacher(ctx *gin.Context) {
	user, err := c.AdminService.PromoteTeacher(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Teacher promoted to admin successfully", user)
}

// Students godoc
// @Summary All students with their enrollment counts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.StudentOverview}
// @Router /api/admin/students [get]
func (c *AdminController) Students(ctx *gin.Context) {
	students, err := c.AdminService.Students()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// Teachers godoc
// @Summary All teachers with their course counts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.TeacherOverview}
// @Router /api/admin/teachers [get]
func (c *AdminController) Teachers(ctx *gin.Context) {
	teachers, err := c.AdminService.Teachers()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, teachers)
}
