package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"yumi/config"
	"yumi/domain"
	"yumi/services/marketplace/repository"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := config.GetLogrusInstance()
	log.Info("Starting HTTP")

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	db, err := config.BootDB(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to boot DB: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := config.NewRedisClient(ctx)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Warn("REDIS_URL not set, login throttling disabled")
	}

	var notifier domain.Notifier
	smtpCfg, err := config.LoadSMTPConfig()
	if err != nil {
		return err
	}
	if smtpCfg != nil {
		notifier = repository.NewSenderRepository(db, smtpCfg.Auth(), smtpCfg.Address(), smtpCfg.Sender)
		log.Info("SMTP initialized")
	}

	app := NewHTTPApp(Deps{
		DB:       db,
		Redis:    rdb,
		Notifier: notifier,
		Auth:     config.LoadAuthConfig(),
		Timeout:  config.GetContextTimeout(),
	})

	var wg sync.WaitGroup
	errChan := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s", config.GetFiberListenAddress())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			errChan <- err
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	select {
	case <-signalChan:
	case err := <-errChan:
		return fmt.Errorf("error starting server: %w", err)
	}

	log.Info("Shutting down the server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
	return nil
}
