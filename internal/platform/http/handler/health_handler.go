// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Check reports whether one dependency (database, redis, ...) is reachable.
type Check func(ctx context.Context) error

// HealthHandler は /healthz を処理し、登録された依存先を順に確認します。
type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewHealthHandler creates a handler running the given named checks on GET.
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HEAD/OPTIONS は依存先を確認せずに応答し、キャッシュを防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	body := gin.H{"status": "ok"}
	if status != http.StatusOK {
		body["status"] = "unhealthy"
	}
	if len(results) > 0 {
		body["checks"] = results
	}
	c.JSON(status, body)
}
