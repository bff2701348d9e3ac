// Command spotsapi serves the spots API from a YAML fixture file so the
// detail pages can be run and exercised without the real backend.
//
// Usage:
//
//	spotsapi serve --fixtures cmd/spotsapi/testdata/fixtures.yaml --addr :8000
//	spotsapi token --user-id 30 --first-name Jo
//
// When --secret is set, review creation requires a bearer session token whose
// subject matches the payload's userId.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haven/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		secret string
		issuer string
	)

	cmd := &cobra.Command{
		Use:   "spotsapi",
		Short: "Fixture-backed spots API for local development",
	}
	cmd.PersistentFlags().StringVar(&secret, "secret", os.Getenv("AUTH_TOKEN_SECRET"), "Session token secret (empty disables auth)")
	cmd.PersistentFlags().StringVar(&issuer, "issuer", "haven", "Session token issuer and audience")

	cmd.AddCommand(serveCmd(&secret, &issuer), tokenCmd(&secret, &issuer))
	return cmd
}

func serveCmd(secret, issuer *string) *cobra.Command {
	var (
		fixtures string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve spots and reviews from a fixture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			st, err := loadFixtures(fixtures)
			if err != nil {
				return err
			}

			srv := &server{store: st, logger: logger.Sugar()}
			if *secret != "" {
				srv.auth = session.NewJWTAuthenticator(*secret, *issuer, *issuer, time.Hour)
			}

			return serve(cmd.Context(), addr, srv, logger.Sugar())
		},
	}
	cmd.Flags().StringVar(&fixtures, "fixtures", "cmd/spotsapi/testdata/fixtures.yaml", "YAML fixture file")
	cmd.Flags().StringVar(&addr, "addr", ":8000", "Listen address")
	return cmd
}

func tokenCmd(secret, issuer *string) *cobra.Command {
	var user session.User

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a session token for a test user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *secret == "" {
				return errors.New("--secret or AUTH_TOKEN_SECRET is required")
			}
			if user.ID < 1 {
				return errors.New("--user-id is required")
			}

			token, err := session.NewJWTAuthenticator(*secret, *issuer, *issuer, 24*time.Hour).GenerateToken(user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&user.ID, "user-id", 0, "User ID")
	cmd.Flags().StringVar(&user.FirstName, "first-name", "Demo", "First name")
	cmd.Flags().StringVar(&user.LastName, "last-name", "User", "Last name")
	return cmd
}

func serve(ctx context.Context, addr string, s *server, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infow("spots api listening", "addr", addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
