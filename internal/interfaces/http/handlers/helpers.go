package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tagcash-inc/tagcash/internal/shared/constants"
)

// requesterFrom reads the authenticated account's ID and role set by the
// auth middleware.
func requesterFrom(c *gin.Context) (uint, string, bool) {
	rawID, exists := c.Get(constants.ContextKeyAccountID)
	if !exists {
		return 0, "", false
	}

	accountID, ok := rawID.(uint)
	if !ok {
		return 0, "", false
	}

	return accountID, c.GetString(constants.ContextKeyAccountRole), true
}
