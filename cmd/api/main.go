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

	"go.uber.org/zap"

	"github.com/Abidimam7/leadgen/internal/config"
	"github.com/Abidimam7/leadgen/internal/infra/database"
	"github.com/Abidimam7/leadgen/internal/infra/http/handlers"
	"github.com/Abidimam7/leadgen/internal/infra/http/middleware"
	"github.com/Abidimam7/leadgen/internal/infra/integration/gemini"
	"github.com/Abidimam7/leadgen/internal/infra/mail"
	"github.com/Abidimam7/leadgen/internal/infra/queue"
	"github.com/Abidimam7/leadgen/internal/leadparse"
	"github.com/Abidimam7/leadgen/internal/logger"
	"github.com/Abidimam7/leadgen/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load("leadgen-api")

	log, err := logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log.Info("starting", cfg.Fields()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Database
	conn, err := database.NewDBConnection(cfg.DB.Driver, cfg.DB.URL, database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	supplierRepo := database.NewSupplierRepository(conn)
	leadRepo := database.NewLeadRepository(conn)
	uploadedRepo := database.NewUploadedLeadRepository(conn)
	campaignRepo := database.NewEmailCampaignRepository(conn)

	// 2. Adapters
	completion := gemini.NewClient(gemini.Config{
		APIKey:     cfg.Completion.APIKey,
		Model:      cfg.Completion.Model,
		BaseURL:    cfg.Completion.BaseURL,
		Timeout:    cfg.Completion.Timeout,
		MaxRetries: cfg.Completion.MaxRetries,
		RetryDelay: cfg.Completion.RetryDelay,
	}, nil, log.Named("gemini"))

	sender := mail.NewEmailSender(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		User:     cfg.Mail.User,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, log.Named("mail"))

	// 3. Campaign events: RabbitMQ when configured, in-process otherwise
	markContacted := usecase.NewMarkLeadContactedUseCase(leadRepo)
	var (
		events usecase.CampaignEventPublisher = &usecase.InlineEventPublisher{Handler: markContacted}
		broker handlers.BrokerStatus
	)
	if cfg.Queue.URL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.URL)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()

		events = queue.NewProducer(rabbitMQ.Ch)
		broker = rabbitMQ

		worker := queue.NewWorker(rabbitMQ.Ch, markContacted, log.Named("worker"))
		go func() {
			if err := worker.Start(ctx, queue.QueueName); err != nil {
				log.Error("campaign worker stopped", zap.Error(err))
			}
		}()
	}

	// 4. Use cases
	chatUC := usecase.NewChatUseCase(completion, leadparse.New(log.Named("leadparse")))
	uploadUC := usecase.NewUploadLeadsUseCase(supplierRepo, leadRepo, uploadedRepo, cfg.Upload.Atomic)
	uploadUC.Metrics = middleware.Domain{}
	emailsUC := usecase.NewGenerateEmailsUseCase(
		supplierRepo,
		leadRepo,
		campaignRepo,
		completion,
		sender,
		events,
		sender.From(),
	)
	emailsUC.Metrics = middleware.Domain{}

	// 5. Router
	router := handlers.NewRouter(handlers.RouterConfig{
		Suppliers:      usecase.NewSupplierUseCase(supplierRepo),
		Leads:          usecase.NewLeadUseCase(leadRepo),
		Campaigns:      usecase.NewEmailCampaignUseCase(campaignRepo),
		UploadedLeads:  usecase.NewUploadedLeadUseCase(uploadedRepo),
		Chat:           chatUC,
		Upload:         uploadUC,
		Emails:         emailsUC,
		Health:         handlers.NewHealthHandler(conn, broker, cfg.Completion.APIKey != ""),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		MaxUploadSize:  cfg.Upload.MaxFileSize,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
