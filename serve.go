package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"copticsocial/internal/devserver"
	"copticsocial/internal/logging"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local groups API with demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewConsoleLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Serving demo API on http://%s\n", ln.Addr())
			fmt.Fprintf(out, "  member token: %s\n", devserver.DemoToken)
			fmt.Fprintf(out, "  admin token:  %s\n", devserver.AdminToken)

			return devserver.New(logger).Serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "address to listen on")
	return cmd
}
