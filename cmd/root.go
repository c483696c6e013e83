package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"starchain/logx"
)

var rootCmd = &cobra.Command{
	Use:   "starchain",
	Short: "Star registry chain CLI",
	Long:  "Command line interface for the tamper-evident star ownership registry chain.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
