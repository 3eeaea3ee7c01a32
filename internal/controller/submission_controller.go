package controller

import (
	"errors"
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
	StorageService    *service.StorageService
}

func NewSubmissionController(submissionService *service.SubmissionService, storageService *service.StorageService) *SubmissionController {
	return &SubmissionController{
		SubmissionService: submissionService,
		StorageService:    storageService,
	}
}

// Submit godoc
// @Summary Submit an assignment
// @Description Multipart form with an optional "file" and optional "content" text.
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param assignmentId path string true "Assignment ID"
// @Param file formData file false "Attachment"
// @Param content formData string false "Text answer"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response "already submitted"
// @Failure 404 {object} util.Response
// @Router /api/submissions/submit/{assignmentId} [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	req := service.SubmitRequest{Content: ctx.PostForm("content")}
	file, err := ctx.FormFile("file")
	switch {
	case err == nil:
		url, err := c.StorageService.SaveUpload(ctx.Request.Context(), file)
		if err != nil {
			util.HandleError(ctx, err)
			return
		}
		req.File = url
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// no attachment
	default:
		util.BadRequest(ctx, "Invalid upload")
		return
	}

	submission, err := c.SubmissionService.Submit(ctx.Request.Context(), user, ctx.Param("assignmentId"), req)
	if err != nil {
		// a rejected submission must not leave its attachment behind
		if req.File != "" {
			c.StorageService.Discard(ctx.Request.Context(), req.File)
		}
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Submission successful", submission)
}

// MySubmission godoc
// @Summary The caller's submission for one assignment
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param assignmentId path string true "Assignment ID"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Router /api/submissions/submit/{assignmentId} [get]
func (c *SubmissionController) MySubmission(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	submission, err := c.SubmissionService.MySubmission(user.ID, ctx.Param("assignmentId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// Grade godoc
// @Summary Grade a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param submissionId path string true "Submission ID"
// @Param body body service.GradeRequest true "Grade and feedback"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/submissions/grade/{submissionId} [put]
func (c *SubmissionController) Grade(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.GradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	submission, err := c.SubmissionService.Grade(ctx.Request.Context(), user.ID, ctx.Param("submissionId"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Submission graded", submission)
}

// AssignmentSubmissions godoc
// @Summary All submissions of an assignment, newest first
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param assignmentId path string true "Assignment ID"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/submissions/assignment/{assignmentId} [get]
func (c *SubmissionController) AssignmentSubmissions(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	submissions, err := c.SubmissionService.ByAssignment(user.ID, ctx.Param("assignmentId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// MySubmissions godoc
// @Summary The caller's submissions
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions/my-submissions [get]
func (c *SubmissionController) MySubmissions(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	submissions, err := c.SubmissionService.MySubmissions(user.ID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// CourseAssignments godoc
// @Summary A course's assignments with the caller's submitted flag
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentWithStatus}
// @Router /api/submissions/course/{courseId}/assignments [get]
func (c *SubmissionController) CourseAssignments(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	assignments, err := c.SubmissionService.CourseAssignments(user.ID, ctx.Param("courseId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// TeacherSubmissions godoc
// @Summary Submissions across all of the caller's courses
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/submissions/teacher/submissions [get]
func (c *SubmissionController) TeacherSubmissions(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	submissions, err := c.SubmissionService.ForTeacher(user.ID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"submissions": submissions})
}
