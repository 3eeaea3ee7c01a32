package controller

import (
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated user or writes a 401 and returns nil.
func currentUser(ctx *gin.Context) *model.User {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.HandleError(ctx, util.Unauthenticated("Not authorized, no token"))
		return nil
	}
	return user
}

func bindJSON(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return false
	}
	return true
}
