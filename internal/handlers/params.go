package handlers

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", apperrors.ErrValidation, name, raw)
	}
	return id, nil
}
