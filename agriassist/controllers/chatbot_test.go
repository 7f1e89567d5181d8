package controllers

import (
	"agriassist/agriassist/services/chatbot"
	"agriassist/agriassist/utils/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type echoResponder struct{ lang string }

func (e *echoResponder) Respond(ctx context.Context, query, language string) chatbot.Reply {
	e.lang = language
	return chatbot.Reply{Summary: query, Response: query, MatchedKeywords: []string{}}
}

func TestAsk(t *testing.T) {
	r := &echoResponder{}
	c := NewChatbotController(r)

	reply := c.Ask(t.Context(), types.ChatbotRequest{Message: "when to sow wheat", Language: "hi"})
	assert.Equal(t, "when to sow wheat", reply.Response)
	assert.Equal(t, "hi", r.lang)
}
