package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PankajKumardev/initgen/internal/docs"
)

func newDocsCmd() *cobra.Command {
	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Documentation site",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation site with live download stats",
		Args:  cobra.NoArgs,
		RunE:  runDocsServe,
	}
	serveCmd.Flags().String(flagAddr, "", "Listen address (default: docs-addr from config, \":8080\")")

	docsCmd.AddCommand(serveCmd)
	return docsCmd
}

func runDocsServe(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return ErrDependencies
	}
	addr := getStringFlag(cmd, flagAddr)
	if addr == "" {
		addr = deps.Config.DocsAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	srv := docs.NewServer(deps.Catalog, deps.Downloads, deps.Logger)
	return srv.ListenAndServe(ctx, addr, func(a net.Addr) {
		_, _ = fmt.Fprintf(out, "%s Serving docs on %s\n", symSuccess(), cliAccent.Render("http://"+a.String()))
		_, _ = fmt.Fprintln(out, cliMuted.Render("  Press Ctrl+C to stop."))
	})
}
