// Package handler はランダムデータAPIのHTTPハンドラーとルーティングを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/randapi/internal/metrics"
	"github.com/hitoshi/randapi/internal/middleware"
	"github.com/hitoshi/randapi/internal/model"
)

// reasonInternal は予期しないエラーをメトリクスに記録する際の理由。
const reasonInternal = "INTERNAL"

// param はパスパラメータ、クエリパラメータ、デフォルト値の順にパラメータを解決する。
// 空文字は未指定として扱う。
// ルーティングはエスケープされたパスで行うため（routeOnEscapedPath）、パスパラメータはここで1回だけデコードする。
func param(r *http.Request, name, def string) string {
	if v := chi.URLParam(r, name); v != "" {
		if unescaped, err := url.PathUnescape(v); err == nil {
			return unescaped
		}
		return v
	}
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}

// writeJSON はdataをJSONとして200で書き込む。
// dataがnilの場合はボディを空にする。
func writeJSON(w http.ResponseWriter, data any) {
	if data == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

// handleError はエラーの種別に応じたレスポンスを書き込む。
// model.APIErrorは200の {"error": message} とし、それ以外は500とする。
func handleError(w http.ResponseWriter, r *http.Request, collector metrics.MetricsCollector, kind string, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		collector.RecordRejected(kind, string(apiErr.Kind))
		middleware.WriteErrorResponse(w, http.StatusOK, apiErr.Message)
		return
	}

	collector.RecordRejected(kind, reasonInternal)
	slog.Error("failed to generate data",
		slog.String("kind", kind),
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
		slog.String("error", err.Error()),
	)
	middleware.WriteInternalServerError(w)
}
