package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
	CourseService     *service.CourseService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService, courseService *service.CourseService) *EnrollmentController {
	return &EnrollmentController{
		EnrollmentService: enrollmentService,
		CourseService:     courseService,
	}
}

type EnrollRequest struct {
	CourseID string `json:"courseId"`
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body EnrollRequest true "Course to join"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response "already enrolled"
// @Failure 404 {object} util.Response
// @Router /api/enrollments/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req EnrollRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(ctx.Request.Context(), user, req.CourseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Enrollment successful", enrollment)
}

// MyCourses godoc
// @Summary Courses the caller is enrolled in
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Router /api/enrollments/my-courses [get]
func (c *EnrollmentController) MyCourses(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	enrollments, err := c.EnrollmentService.MyCourses(user.ID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// CourseStudents godoc
// @Summary Roster of a course the caller teaches
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response{data=[]service.EnrolledStudent}
// @Failure 403 {object} util.Response
// @Router /api/enrollments/course/{courseId}/students [get]
func (c *EnrollmentController) CourseStudents(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	students, err := c.CourseService.Roster(user.ID, ctx.Param("courseId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// Unenroll godoc
// @Summary Leave a course
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/unenroll/{courseId} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	if err := c.EnrollmentService.Unenroll(user.ID, ctx.Param("courseId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Unenrolled successfully", nil)
}
