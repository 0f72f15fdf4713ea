package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lecture-whisper/internal/api/server"
	"lecture-whisper/internal/app"
	"lecture-whisper/internal/config"
)

var (
	host       string
	port       string
	configPath string
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription API server",
	Long: `Start the HTTP server exposing the submission and history endpoints.
Requires OPENAI_API_KEY and a reachable MongoDB (MONGO_URI, default
mongodb://localhost:27017).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "bind address (overrides config)")
	Cmd.Flags().StringVar(&port, "port", "", "listen port (overrides config)")
	Cmd.Flags().StringVar(&configPath, "config", "config.yaml", "server config file")
}

func run() error {
	creds, err := config.InitializeCredentials()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	serverCfg, err := config.LoadServerConfig(configPath)
	if err != nil {
		return err
	}
	if host != "" {
		serverCfg.Host = host
	}
	if port != "" {
		serverCfg.Port = port
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	service, cleanup, err := app.InitializeTranscriptionService(ctx, creds, serverCfg)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer cleanup()

	logger := app.NewLogger()
	srv := server.NewServer(server.Config{
		Host:         serverCfg.Host,
		Port:         serverCfg.Port,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
		Environment:  serverCfg.Environment,
	}, service, logger)

	if err := srv.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
