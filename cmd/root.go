package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimator",
		Short: "Construction quotation portal with AI-powered cost estimation",
		Long: `Estimator is the Ajay Constructions agent portal backend.

It turns project parameters into a cost estimate and bill of materials via
Gemini, caches one illustrative architectural render per category per week,
and keeps per-session quotation and invoice state.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEstimateCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
