package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupViewerRouter(defaultViewerID uint) (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var seen uint
	r.Use(ViewerIdentityMiddleware(defaultViewerID))
	r.GET("/probe", func(c *gin.Context) {
		seen = c.GetUint("viewer_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestViewerIdentity_DefaultWhenHeaderAbsent(t *testing.T) {
	router, seen := setupViewerRouter(2)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), *seen)
}

func TestViewerIdentity_HeaderOverridesDefault(t *testing.T) {
	router, seen := setupViewerRouter(2)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set(ViewerHeader, "7")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), *seen)
}

func TestViewerIdentity_RejectsInvalidHeader(t *testing.T) {
	router, _ := setupViewerRouter(2)

	for _, raw := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set(ViewerHeader, raw)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "header %q", raw)
	}
}
