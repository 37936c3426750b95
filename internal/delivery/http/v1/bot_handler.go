package v1

import (
	"net/http"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type BotHandler struct {
	dispatcher domain.EventDispatcher
}

func NewBotHandler(r *gin.RouterGroup, dispatcher domain.EventDispatcher) {
	handler := &BotHandler{dispatcher: dispatcher}

	r.POST("/webhook", handler.HandleUpdate)
}

// updateRequest is the normalized inbound update pushed by the bot platform
// bridge.
type updateRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Kind    string `json:"kind" binding:"required,oneof=text choice command"`
	Payload string `json:"payload"`
}

// HandleUpdate turns an inbound update into a core event and renders the
// resulting reply descriptor for the presenter.
func (h *BotHandler) HandleUpdate(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid update body: "+err.Error(), nil)
		return
	}

	event := domain.Event{
		UserID:  req.UserID,
		Kind:    domain.EventKind(req.Kind),
		Payload: req.Payload,
	}

	reply, err := h.dispatcher.Dispatch(c.Request.Context(), event)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "ok", RenderReply(reply))
}
