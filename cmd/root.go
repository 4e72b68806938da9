package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/amparasaude/ampara_backend/cmd/http"
	systemcmd "github.com/amparasaude/ampara_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "ampara",
	Short: "Ampara multi-tenant practice management platform for psychology clinics.",
	Long: `Ampara is a multi-tenant SaaS backend for Brazilian psychology clinics.
It manages recurring session scheduling, conflict detection, patient diaries,
and engagement rewards through a single unified deployment.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
