package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ailab/timesheetgen/internal/config"
	"github.com/ailab/timesheetgen/internal/refdata"
	"github.com/ailab/timesheetgen/internal/server"
)

var (
	serveAddr      string
	serveSynthetic int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser-facing JSON API",
	Long: `serve exposes the generator over HTTP for a browser front-end:
reference data, per-session leave toggling, generation, and CSV/XLSX
downloads. Sessions live in memory and vanish when the process exits.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, \":8080\")")
	serveCmd.Flags().IntVar(&serveSynthetic, "synthetic", 0, "Append N fabricated employees to the roster")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	employees := refdata.Employees()
	if serveSynthetic > 0 {
		employees = append(employees, refdata.Synthesize(serveSynthetic)...)
	}

	srv := server.New(cfg.Server, employees, refdata.Projects(), cfg.Holidays)

	fmt.Printf("Listening on %s\n", addr)
	if err := srv.Router().Run(addr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return nil
}
