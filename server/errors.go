package server

import (
	"basecamp/errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorKind struct {
	target error
	status int
	code   string
}

// errorKinds gives every domain failure exactly one status and code.
var errorKinds = []errorKind{
	{errors.ErrNotFound, http.StatusNotFound, "not_found"},
	{errors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{errors.ErrInvalidReference, http.StatusUnprocessableEntity, "invalid_reference"},
	{errors.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
	{errors.ErrAlreadyJoined, http.StatusConflict, "already_joined"},
	{errors.ErrDuplicateRequest, http.StatusConflict, "duplicate_request"},
	{errors.ErrAlreadyProcessed, http.StatusConflict, "already_processed"},
	{errors.ErrSelfMessage, http.StatusUnprocessableEntity, "self_message"},
	{errors.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
	{errors.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
}

type errorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func classify(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.status, kind.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

func abortWithError(c *gin.Context, err error) {
	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = "internal error"
	}
	c.AbortWithStatusJSON(status, errorResponse{Status: status, Error: code, Message: message})
}

// fail answers with the mapped error. Internal failures are also logged with
// the handler that hit them since their cause never reaches the client.
func (h *Handler) fail(c *gin.Context, err error) {
	if status, _ := classify(err); status == http.StatusInternalServerError {
		h.log.Error("Handler failed", "handler", c.HandlerName(), "user_id", currentUser(c), "error", err)
	}
	abortWithError(c, err)
}
