package api

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-back/internal/db"
)

// callerAllowed is the shared ownership predicate: the authenticated
// caller may act on a record when it is their own (by email) or when
// they are an admin.
func callerAllowed(c *gin.Context, email string) bool {
	caller := c.GetString("email")
	if caller != "" && caller == email {
		return true
	}
	admin, err := db.IsAdmin(context.Background(), caller)
	if err != nil {
		return false
	}
	return admin
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
