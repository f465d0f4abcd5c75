package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paquirobles/cuadros-reserve/pkg/httpx"
)

func TestOwnerIDMiddleware_MissingHeader_401(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.OwnerIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(204) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 without %s, got %d", httpx.HeaderOwnerID, w.Code)
	}
}

func TestOwnerIDMiddleware_PassesOwnerToContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotOwner string
	var ok bool

	r := gin.New()
	r.Use(httpx.OwnerIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		gotOwner, ok = httpx.OwnerID(c)
		c.Status(204)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set(httpx.HeaderOwnerID, "owner-42")
	r.ServeHTTP(w, req)

	if w.Code != 204 {
		t.Fatalf("want 204, got %d", w.Code)
	}
	if !ok || gotOwner != "owner-42" {
		t.Fatalf("owner id must reach handler, got ok=%v owner=%q", ok, gotOwner)
	}
}
