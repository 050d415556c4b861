package server

import (
	"basecamp/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (h *Handler) ListThreads(c *gin.Context) {
	threads, err := h.services.Messages.ListThreads(currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(threads, func(v domain.ThreadView, _ int) threadResponse { return toThreadResponse(v) }))
}

// CreateThread opens a thread or appends to the existing one for the same listing and buyer.
func (h *Handler) CreateThread(c *gin.Context) {
	var req createThreadRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.services.Messages.CreateThread(currentUser(c), domain.CreateThreadCommand{
		ListingID: req.ListingID,
		Message:   req.Message,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toThreadResponse(view))
}

func (h *Handler) GetThread(c *gin.Context) {
	threadID, ok := pathID(c, "threadId", "thread")
	if !ok {
		return
	}
	view, err := h.services.Messages.GetThread(currentUser(c), threadID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toThreadResponse(view))
}

func (h *Handler) SendMessage(c *gin.Context) {
	threadID, ok := pathID(c, "threadId", "thread")
	if !ok {
		return
	}
	var req sendMessageRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.services.Messages.SendMessage(currentUser(c), threadID, domain.SendMessageCommand{Content: req.Content})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toThreadResponse(view))
}
