package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/internal/logging"
	"github.com/gg582/hanjamo/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer conversion requests on a unix socket",
		Long: fmt.Sprintf(`Listen on the unix socket given by --socket (or the config file) and
answer one request per line. A request is "op<TAB>text"; the answer is
"ok<TAB>result" or "err<TAB>message".

Operations: %s.`, strings.Join(server.Ops(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// serve runs the server until ctx ends, logging through the logger ctx
// carries.
func (a *app) serve(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	srv, err := server.Start(a.socket, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", logging.FieldSocket, srv.Socket())
		return nil
	case err := <-srv.Err():
		return err
	}
}
