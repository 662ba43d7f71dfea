//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"campus-reserve/internal/handler/middleware"
	"campus-reserve/tests/common/builder"

	"github.com/gin-gonic/gin"
)

const (
	studentToken   = "student-token"
	organizerToken = "organizer-token"
)

var (
	testStudent   = builder.NewRequesterBuilder().MustBuild()
	testOrganizer = builder.NewRequesterBuilder().AsOrganizer().MustBuild()
)

// fakeAuth maps fixed tokens to requesters so handler tests never parse JWTs.
func fakeAuth(c *gin.Context) {
	switch strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ") {
	case studentToken:
		middleware.SetRequester(c, testStudent)
	case organizerToken:
		middleware.SetRequester(c, testOrganizer)
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}
