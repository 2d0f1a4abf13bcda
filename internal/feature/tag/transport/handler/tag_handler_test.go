package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blog_backend/internal/shared/apperr"
)

type mockTagUsecase struct {
	ListTagsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockTagUsecase) ListTags(ctx context.Context) ([]string, error) {
	return m.ListTagsFunc(ctx)
}

func TestTagHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		tags     []string
		err      error
		wantCode int
		wantBody string
	}{
		{"tags", []string{"dragons", "go"}, nil, http.StatusOK, `{"tags":["dragons","go"]}`},
		{"empty", []string{}, nil, http.StatusOK, `{"tags":[]}`},
		{"store failure", nil, apperr.Store(context.Canceled), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTagHandler(&mockTagUsecase{ListTagsFunc: func(ctx context.Context) ([]string, error) {
				return tt.tags, tt.err
			}})
			r := gin.New()
			r.GET("/api/tags", h.List)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tags", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
