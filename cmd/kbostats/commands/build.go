package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/kbostats/internal/artifact"
	"github.com/wonny/kbostats/internal/chart"
	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/portal"
	"github.com/wonny/kbostats/pkg/config"
	"github.com/wonny/kbostats/pkg/logger"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "차트 아티팩트 일괄 생성",
	Long: `서버를 띄우지 않고 리그 전역 차트를 일괄 생성합니다.

데이터 문서를 수정한 뒤 정적 트리만 갱신할 때 사용합니다.

Example:
  go run ./cmd/kbostats build`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	store := dataset.New(cfg.DataDir(), log)
	catalog := artifact.NewCatalog(cfg.StaticDir)
	render := chart.New(catalog, log)

	portal.NewBuilder(store, render, log).BuildAll()

	fmt.Printf("✅ Artifacts written under %s\n", cfg.StaticDir)
	return nil
}
