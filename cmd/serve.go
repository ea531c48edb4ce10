// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canonical/account-service/internal/authorization"
	"github.com/canonical/account-service/internal/config"
	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/directory"
	"github.com/canonical/account-service/internal/identity"
	"github.com/canonical/account-service/internal/invoicing"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring/prometheus"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/access"
	"github.com/canonical/account-service/pkg/account"
	"github.com/canonical/account-service/pkg/client"
	"github.com/canonical/account-service/pkg/project"
	"github.com/canonical/account-service/pkg/web"
	"github.com/canonical/account-service/pkg/webhooks"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("account-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	directoryClient := directory.NewClient(specs.DirectoryURL, tracer, monitor, logger)

	var invoiceSource client.InvoiceSourceInterface
	if specs.InvoicingURL != "" {
		invoiceSource = invoicing.NewClient(specs.InvoicingURL, tracer, monitor, logger)
	} else {
		invoiceSource = invoicing.NewNoopClient()
		logger.Info("No invoicing service configured, client stats will report zero revenue")
	}

	accountService := account.NewService(s, dbClient, directoryClient, tracer, monitor, logger)
	projectService := project.NewService(s, dbClient, authorizer, tracer, monitor, logger)
	clientService := client.NewService(s, dbClient, invoiceSource, tracer, monitor, logger)
	accessService := access.NewService(s, dbClient, tracer, monitor, logger)

	identityMiddleware := identity.NewMiddleware(tracer, monitor, logger)

	router := web.NewRouter(
		account.NewAPI(accountService, authorizer, tracer, monitor, logger),
		project.NewAPI(projectService, authorizer, tracer, monitor, logger),
		client.NewAPI(clientService, authorizer, tracer, monitor, logger),
		access.NewAPI(accessService, authorizer, tracer, monitor, logger),
		webhooks.NewAPI(accountService, tracer, monitor, logger),
		identityMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
