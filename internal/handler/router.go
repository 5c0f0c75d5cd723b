package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/randapi/internal/generator"
	"github.com/hitoshi/randapi/internal/metrics"
	"github.com/hitoshi/randapi/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// 生成
	Generator *generator.Generator
	MaxAmount int

	// メトリクス。Gathererがnilの場合は/metricsを公開しない
	Metrics  metrics.MetricsCollector
	Gatherer prometheus.Gatherer

	// ミドルウェア依存。RateLimiterがnilの場合はレート制限を行わない
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Logging → Recovery → CORS → SecurityHeaders → routeOnEscapedPath → StripSlashes → RateLimit
//
// RecoveryをLoggingの内側に置き、panic由来の500もログとメトリクスに残す。
//
// /health と /metrics はレート制限の対象外とする。
func NewRouter(deps *RouterDeps) http.Handler {
	collector := deps.Metrics
	if collector == nil {
		collector = metrics.NopCollector{}
	}

	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(slog.Default(), collector))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(routeOnEscapedPath)
	r.Use(chimw.StripSlashes)

	h := NewRandomHandler(deps.Generator, collector, deps.MaxAmount)

	// --- 運用エンドポイント ---
	r.Get("/health", h.Health)
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- 生成エンドポイント ---
	r.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.Middleware())
		}

		r.Get("/dice", h.Dice)
		r.Get("/dice/{faces}", h.Dice)
		r.Get("/dice/{faces}/{amount}", h.Dice)

		r.Get("/people", h.People)
		r.Get("/people/{gender}", h.People)
		r.Get("/people/{gender}/{amount}", h.People)

		r.Get("/coin", h.Coin)
		r.Get("/coin/{amount}", h.Coin)

		r.Get("/rps", h.RPS)

		r.Get("/color", h.Color)
		r.Get("/color/{format}", h.Color)
		r.Get("/color/{format}/{amount}", h.Color)

		r.Get("/place", h.Place)
		r.Get("/place/{amount}", h.Place)
	})

	return r
}

// routeOnEscapedPath はr.URL.RawPathの有無にかかわらず、エスケープされたままのパスでルーティングさせる。
// パスパラメータのデコードはparamで1回だけ行う。
func routeOnEscapedPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath == "" {
			rctx.RoutePath = r.URL.EscapedPath()
		}
		next.ServeHTTP(w, r)
	})
}
