package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ViewerHeader names the request header carrying the viewer identity.
// There is no authentication layer yet; until one exists the header is
// trusted as-is and absent headers fall back to the configured default
// viewer.
const ViewerHeader = "X-Viewer-ID"

func ViewerIdentityMiddleware(defaultViewerID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := defaultViewerID

		if raw := c.GetHeader(ViewerHeader); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || parsed == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + ViewerHeader + " header"})
				c.Abort()
				return
			}
			viewerID = uint(parsed)
		}

		c.Set("viewer_id", viewerID)
		c.Next()
	}
}
