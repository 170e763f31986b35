package memora

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/memora/intake/internal/address"
	"github.com/memora/intake/internal/cache"
	"github.com/memora/intake/internal/config"
	"github.com/memora/intake/internal/kakao"
	"github.com/memora/intake/internal/lib/jwt"
	"github.com/memora/intake/internal/migrations"
	"github.com/memora/intake/internal/rabbitmq"
	auditservice "github.com/memora/intake/internal/services/audit"
	authservice "github.com/memora/intake/internal/services/auth"
	dictservice "github.com/memora/intake/internal/services/dictionary"
	formsservice "github.com/memora/intake/internal/services/forms"
	userservice "github.com/memora/intake/internal/services/user"
	"github.com/memora/intake/internal/storage/repository"
)

// App собирает зависимости основного приложения: HTTP-сервер, базу данных,
// кэш и канал публикации событий аудита.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New создаёт приложение: подключает зависимости, применяет миграции
// и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQConnection, 5, 2*time.Second)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetAuditQueues())
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	auditPublisher := auditservice.NewPublisher(ch)

	authService := authservice.NewService(db, cacheRedis, jwtMaker)
	dictionaryService := dictservice.NewService(db, cacheRedis, auditPublisher, logger)
	userService := userservice.NewService(db, auditPublisher, logger)
	formsService := formsservice.NewService(db, auditPublisher, logger)
	auditService := auditservice.NewService(db, logger)

	picker, widget, err := buildPicker(cfg.Kakao)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger,
		authService, dictionaryService, userService, formsService, auditService,
		picker, widget)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		conn:   conn,
		ch:     ch,
	}, nil
}

// buildPicker выбирает реализацию поиска адреса по конфигурации.
func buildPicker(cfg config.Kakao) (address.Picker, *address.WidgetPicker, error) {
	widget := address.NewWidgetPicker()
	switch cfg.Picker {
	case "rest":
		client := kakao.NewClient(cfg.APIKey, cfg.TimeoutKakao)
		return address.NewKakaoPicker(client), widget, nil
	case "widget":
		return widget, widget, nil
	default:
		return nil, nil, fmt.Errorf("unknown address picker: %s", cfg.Picker)
	}
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.ch.Close()
		_ = a.conn.Close()
		_ = a.db.DB.Close()
		return err
	}
}
