package controllers

import (
	"agriassist/agriassist/services/chatbot"
	"agriassist/agriassist/utils/types"
	"context"
)

type Responder interface {
	Respond(ctx context.Context, query, language string) chatbot.Reply
}

type ChatbotController struct {
	responder Responder
}

func NewChatbotController(responder Responder) *ChatbotController {
	return &ChatbotController{responder: responder}
}

// Ask answers one chatbot message. It cannot fail; collaborator errors are
// absorbed by the responder.
func (c *ChatbotController) Ask(ctx context.Context, req types.ChatbotRequest) chatbot.Reply {
	return c.responder.Respond(ctx, req.Message, req.Language)
}
