package server

import (
	"basecamp/domain"
	"basecamp/errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, fmt.Errorf("%w: malformed body: %v", errors.ErrInvalidArgument, err))
		return false
	}
	return true
}

func pathID(c *gin.Context, param, field string) (uuid.UUID, bool) {
	id, err := domain.ParseID(c.Param(param), field)
	if err != nil {
		abortWithError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
