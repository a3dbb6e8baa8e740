package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/di"
	"github.com/mikey/applicant-screener/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	emailIngress ports.EmailIngress,
	generator core.TextGenerator,
	appStore core.ApplicationStore,
) error {
	defer logger.Sync()

	// Start the ingress
	if err := emailIngress.Start(); err != nil {
		logger.Fatal("Failed to start email ingress", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the ingress
	if err := emailIngress.Stop(); err != nil {
		logger.Error("Failed to stop email ingress", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := generator.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close text generator", zap.Error(err))
		}
	}
	if closer, ok := appStore.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close application store", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
	return nil
}
