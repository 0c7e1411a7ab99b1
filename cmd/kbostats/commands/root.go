package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kbostats",
	Short: "KBO 통계 포털 - 팀/선수 분석 웹 서버",
	Long: `KBO Stats Portal

세 개의 JSON 데이터 문서(팀 기록, 상대 전적, 선수 기록)에서
차트 아티팩트를 생성하고 분석 페이지를 서빙합니다.

Usage:
  go run ./cmd/kbostats [command]

Examples:
  go run ./cmd/kbostats serve
  go run ./cmd/kbostats build`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
