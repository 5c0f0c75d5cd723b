package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hitoshi/randapi/internal/config"
	"github.com/hitoshi/randapi/internal/corpus"
	"github.com/hitoshi/randapi/internal/generator"
	"github.com/hitoshi/randapi/internal/handler"
	"github.com/hitoshi/randapi/internal/logger"
	"github.com/hitoshi/randapi/internal/metrics"
	"github.com/hitoshi/randapi/internal/middleware"
	"github.com/hitoshi/randapi/internal/random"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w, "info")

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 3. 設定されたログレベルでロガーを再構成する
	logger.SetupDefault(w, cfg.LogLevel)

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、ロガーの初期化をスキップする。
	// ポートは.envを含めてserveと同じ方法で解決する
	if cmd == CommandHealthcheck {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runHealthcheck(cfg.ServerPort)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("assets_path", cfg.AssetsPath),
	)

	return runServe(cfg)
}

// server はHTTPサーバーと、停止時に解放すべきリソースをまとめたもの。
type server struct {
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
}

// close はバックグラウンドのリソースを解放する。
func (s *server) close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// newServer は設定から全依存関係をワイヤリングしたHTTPサーバーを構築する。
// srcはジェネレーターの乱数源。
func newServer(cfg *config.Config, src random.Source) *server {
	// 1. コーパスの初期化
	var names corpus.Corpus = corpus.NewFileCorpus(cfg.AssetsPath)
	if cfg.CorpusCache {
		names = corpus.NewCachedCorpus(names)
	}

	// 2. ジェネレーターの初期化
	gen := generator.New(src, names)

	// 3. メトリクスの初期化
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	// 4. レートリミッターの初期化（0で無効）
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitGeneral > 0 {
		rateLimiter = middleware.NewRateLimiter(middleware.NewRateLimiterConfig(cfg.RateLimitGeneral))
	}

	// 5. ルーターの構築
	router := handler.NewRouter(&handler.RouterDeps{
		Generator:         gen,
		MaxAmount:         cfg.MaxAmount,
		Metrics:           collector,
		Gatherer:          reg,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
	})

	return &server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.ServerPort,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		rateLimiter: rateLimiter,
	}
}

// runServe はAPIサーバーモードで起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	srv := newServer(cfg, random.Default())
	defer srv.close()

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server starting",
			slog.String("addr", srv.httpServer.Addr),
		)
		if err := srv.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen error: %w", err)
	case <-stop:
	}

	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}
