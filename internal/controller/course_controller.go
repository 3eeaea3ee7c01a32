package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseRequest true "Course"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.CourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.CourseService.Create(user.ID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Course created successfully", course)
}

// ListCourses godoc
// @Summary List all courses with their teachers
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.All()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// MyCourses godoc
// @Summary Courses taught by the caller
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/mycourses [get]
func (c *CourseController) MyCourses(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	courses, err := c.CourseService.MyCourses(user.ID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Only non-empty fields are applied.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Param body body service.CourseRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.CourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.CourseService.Update(user.ID, ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Course updated successfully", course)
}

// DeleteCourse godoc
// @Summary Delete a course without enrollments
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "students are enrolled"
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	if err := c.CourseService.Delete(user.ID, ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Course deleted successfully", nil)
}

// CourseStudents godoc
// @Summary Students enrolled in a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} util.Response{data=[]service.EnrolledStudent}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/students [get]
func (c *CourseController) CourseStudents(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	students, err := c.CourseService.Roster(user.ID, ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}
