// Package auditlogger собирает приложение-потребитель событий аудита:
// сообщения из очереди audit.events записываются в журнал аудита в базе.
package auditlogger

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/memora/intake/internal/config"
	"github.com/memora/intake/internal/rabbitmq"
	auditservice "github.com/memora/intake/internal/services/audit"
	"github.com/memora/intake/internal/storage/repository"
)

type App struct {
	conn         *amqp.Connection
	ch           *amqp.Channel
	auditService *auditservice.Service
	logger       *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	conn, err := rabbitmq.Connect(cfg.RabbitMQConnection, 5, 2*time.Second)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetAuditQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	auditService := auditservice.NewService(db, logger)

	return &App{
		conn:         conn,
		ch:           ch,
		auditService: auditService,
		logger:       logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.AuditQueueName, a.auditService.SaveEvent)
	if err != nil {
		a.logger.Error("failed to start audit.events consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("audit-logger shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
