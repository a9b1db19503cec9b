package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dannygar/NLWeb/core/config"
	"github.com/dannygar/NLWeb/core/launcher"
	"github.com/dannygar/NLWeb/core/logger"
	"github.com/dannygar/NLWeb/core/webserver"
	"github.com/dannygar/NLWeb/feature/chat"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat web server",
	Long:  `Starts the HTTP server, serves the chat page and opens it in the default browser.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		// A malformed PORT aborts here, before any server work happens.
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the server component and register its features
		srv := webserver.New(cfg.Server, logg)
		srv.Register(chat.NewFeature(logg))

		// 4. Bootstrap: delayed browser launch + blocking serve
		l, err := launcher.New(cfg.Server, srv, chat.FulfillRequest, logg)
		if err != nil {
			logg.Fatal("Failed to build launcher", zap.Error(err))
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- l.Run()
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case sig := <-c:
			logg.Info("Shutting down server...", zap.String("signal", sig.String()))
			_ = srv.Shutdown()
			<-errCh
		case err := <-errCh:
			if err != nil {
				logg.Fatal("Server failed", zap.Error(err))
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
