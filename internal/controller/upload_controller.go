package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
	AuthService    *service.AuthService
}

func NewUploadController(storageService *service.StorageService, authService *service.AuthService) *UploadController {
	return &UploadController{
		StorageService: storageService,
		AuthService:    authService,
	}
}

// UploadProfileImage godoc
// @Summary Upload the caller's profile image
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param profileImage formData file true "Image"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/profile/upload-image [post]
func (c *UploadController) UploadProfileImage(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	file, err := ctx.FormFile("profileImage")
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	url, err := c.StorageService.SaveUpload(ctx.Request.Context(), file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	updated, err := c.AuthService.UpdateProfileImage(user.ID, url)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Profile image uploaded", gin.H{"profileImage": updated.ProfileImage})
}

// UploadFile godoc
// @Summary Upload a file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "File"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/files [post]
func (c *UploadController) UploadFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	url, err := c.StorageService.SaveUpload(ctx.Request.Context(), file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "File uploaded successfully", gin.H{"filePath": url})
}
