package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	MessageService *service.MessageService
}

func NewMessageController(messageService *service.MessageService) *MessageController {
	return &MessageController{MessageService: messageService}
}

// Send godoc
// @Summary Send a message within a course
// @Tags messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SendMessageRequest true "Message"
// @Success 201 {object} util.Response{data=model.Message}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/messages/send [post]
func (c *MessageController) Send(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	var req service.SendMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	message, err := c.MessageService.Send(user.ID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Message sent successfully", message)
}

// Conversation godoc
// @Summary Messages between the caller and another user in a course
// @Tags messages
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "Other participant"
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Message}
// @Router /api/messages/conversation/{userId}/{courseId} [get]
func (c *MessageController) Conversation(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	messages, err := c.MessageService.Conversation(user.ID, ctx.Param("userId"), ctx.Param("courseId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}

// Threads godoc
// @Summary Latest message per counterpart in a course
// @Tags messages
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "Must be the caller"
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Thread}
// @Failure 403 {object} util.Response
// @Router /api/messages/threads/{userId}/{courseId} [get]
func (c *MessageController) Threads(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	threads, err := c.MessageService.Threads(user.ID, ctx.Param("userId"), ctx.Param("courseId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, threads)
}
