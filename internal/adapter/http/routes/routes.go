package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "repasse_imoveis/docs"
	"repasse_imoveis/internal/adapter/http/handlers"
	"repasse_imoveis/internal/adapter/persistence/repository"
	"repasse_imoveis/internal/domain/billing"
	appconfig "repasse_imoveis/internal/infrastructure/config"
	"repasse_imoveis/internal/infrastructure/database"
	"repasse_imoveis/internal/infrastructure/lock"
	"repasse_imoveis/internal/infrastructure/logger"
	"repasse_imoveis/internal/infrastructure/metrics"
	"repasse_imoveis/internal/infrastructure/payments"
	"repasse_imoveis/internal/usecase"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Invoice       *handlers.InvoiceHandler
	Settlement    *handlers.SettlementHandler
	Prestacao     *handlers.PrestacaoHandler
	ReferenceData *handlers.ReferenceDataHandler
}

// NewRouter builds the gin engine: middlewares, docs, probes, metrics and the API.
func NewRouter(h Handlers, metricsHandler http.Handler, checks []HealthCheck, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
	addHealthRoutes(router, checks)

	api := router.Group("/api")
	addBillingRoutes(api, h)
	return router
}

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *appconfig.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return err
	}
	if cfg.DynamoDB.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg.Tables, log); err != nil {
			return err
		}
	}

	repos := usecase.Repositories{
		Invoices:          repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices),
		Settlements:       repository.NewSettlementDynamoRepository(ddb, cfg.Tables.Settlements, cfg.Tables.Payouts, cfg.Tables.Invoices),
		Contracts:         repository.NewContractDynamoRepository(ddb, cfg.Tables.Contracts),
		Owners:            repository.NewOwnerDynamoRepository(ddb, cfg.Tables.Owners),
		RetentionConfigs:  repository.NewRetentionConfigDynamoRepository(ddb, cfg.Tables.RetentionConfigs),
		CorrectionIndexes: repository.NewCorrectionIndexDynamoRepository(ddb, cfg.Tables.CorrectionIndexes),
	}

	checks := []HealthCheck{dynamoCheck(ddb, cfg.Tables.Invoices)}

	var locker interfaces.ILocker
	if cfg.Lock.RedisURL != "" {
		client, err := lock.NewRedisClient(ctx, cfg.Lock.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client)
		checks = append(checks, redisCheck(client))
		log.Info("[server][lock] using redis locks")
	} else {
		locker = lock.NewMemoryLocker()
		log.Warn("[server][lock] REDIS_URL not set, locks are local to this instance")
	}

	var verifier interfaces.IPayoutVerifier
	mp, err := payments.NewMercadoPagoVerifier(cfg.MercadoPago, log)
	if err != nil {
		log.Warn("[server][payments] receipt verification disabled", zap.Error(err))
	} else {
		verifier = mp
	}

	m := metrics.New()
	invoiceUseCase := usecase.NewInvoiceUseCase(repos, billing.NewLateFeeCalculator(cfg.LateFee.Rates()), locker, cfg.Lock.TTL, m, log)
	settlementUseCase := usecase.NewSettlementUseCase(repos, verifier, locker, cfg.Lock.TTL, m, log)
	prestacaoUseCase := usecase.NewPrestacaoUseCase(repos.Contracts, log)
	retentionUseCase := usecase.NewRetentionConfigUseCase(repos.RetentionConfigs, log)
	indexUseCase := usecase.NewCorrectionIndexUseCase(repos.CorrectionIndexes, log)

	router := NewRouter(Handlers{
		Invoice:       handlers.NewInvoiceHandler(invoiceUseCase),
		Settlement:    handlers.NewSettlementHandler(settlementUseCase),
		Prestacao:     handlers.NewPrestacaoHandler(prestacaoUseCase),
		ReferenceData: handlers.NewReferenceDataHandler(retentionUseCase, indexUseCase),
	}, m.Handler(), checks, log)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           withCORS(router, cfg.CORS),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[server][http] starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[server][http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("[server][http] exited gracefully")
	return nil
}

func withCORS(h http.Handler, cfg appconfig.CORSConfig) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(h)
}

func dynamoCheck(ddb *dynamodb.Client, table string) HealthCheck {
	return HealthCheck{Name: "dynamodb", Check: func(ctx context.Context) error {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		return err
	}}
}

func redisCheck(client *redis.Client) HealthCheck {
	return HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}}
}
