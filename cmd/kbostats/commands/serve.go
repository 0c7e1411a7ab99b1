package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/kbostats/internal/api"
	"github.com/wonny/kbostats/internal/api/handlers"
	"github.com/wonny/kbostats/internal/artifact"
	"github.com/wonny/kbostats/internal/chart"
	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/portal"
	"github.com/wonny/kbostats/internal/scheduler"
	"github.com/wonny/kbostats/pkg/config"
	"github.com/wonny/kbostats/pkg/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "포털 서버 시작",
	Long: `KBO 통계 포털 서버를 시작합니다.

이 명령어는:
- 기동 시 리그 전역 차트 일괄 생성
- 분석 페이지 서빙
- 선수 조회/비교 API 제공

Endpoints:
  GET /                        - 리그 순위
  GET /analysis                - 팀 분석
  GET /player_compare          - 선수 비교
  GET /team/{name}             - 팀 상세
  GET /player/{id}             - 선수 상세
  GET /api/players/{team}      - 팀 로스터 JSON
  GET /api/player/{id}         - 선수 기록 JSON
  GET /plot/compare/{p1}/{p2}  - 비교 차트 PNG

Example:
  go run ./cmd/kbostats serve
  go run ./cmd/kbostats serve --port 8090`,
	RunE: runServe,
}

var (
	servePort string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	// Flags
	serveCmd.Flags().StringVar(&servePort, "port", "", "서버 포트 (기본: PORT 환경변수)")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("=== KBO Stats Portal ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if servePort != "" {
		cfg.Port = servePort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port":   cfg.Port,
		"env":    cfg.Env,
		"static": cfg.StaticDir,
	}).Info("Initializing portal server")

	// 3. Wire dataset, catalog, renderer, portal
	store := dataset.New(cfg.DataDir(), log)
	catalog := artifact.NewCatalog(cfg.StaticDir)
	render := chart.New(catalog, log)
	builder := portal.NewBuilder(store, render, log)
	p := portal.NewPortal(store, render, log)

	// 4. Build cohort-wide artifacts before accepting traffic
	builder.BuildAll()

	// 5. Create handlers and router
	pages, err := handlers.NewPageHandler(p, cfg.TemplatesDir, log)
	if err != nil {
		return fmt.Errorf("create page handler: %w", err)
	}
	players := handlers.NewPlayerHandler(p, log)
	router := api.NewRouter(pages, players, cfg.StaticDir, log)

	// 6. Create server
	server := api.New(cfg, log, router)

	// 7. Optional periodic artifact rebuild
	var sched *scheduler.Scheduler
	if cfg.RebuildSchedule != "" {
		sched = scheduler.New(log)
		if err := sched.AddJob(scheduler.NewRebuildJob(builder, cfg.RebuildSchedule)); err != nil {
			return fmt.Errorf("schedule rebuild: %w", err)
		}
		sched.Start()
	}

	// 8. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("Portal server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
