package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/school-library/library/config"
	"github.com/Astemirdum/school-library/library/internal/handler"
	"github.com/Astemirdum/school-library/library/internal/repository"
	"github.com/Astemirdum/school-library/library/internal/server"
	"github.com/Astemirdum/school-library/library/internal/service"
	"github.com/Astemirdum/school-library/library/migrations"
	"github.com/Astemirdum/school-library/pkg/kafka"
	"github.com/Astemirdum/school-library/pkg/logger"
	"github.com/Astemirdum/school-library/pkg/postgres"
	"github.com/Astemirdum/school-library/pkg/tracing"
)

const serviceName = "library"

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, serviceName)
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, serviceName)
	if err != nil {
		return errors.Wrap(err, "tracing.Init")
	}

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	if postgres.TestConnection(ctx, db, log) {
		log.Info("connected to the database", zap.String("db", cfg.Database.NameDB))
	}

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	events, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Warn("close publisher", zap.Error(err))
		}
	}()

	svc := service.NewService(repo, events, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.DPanic("srv.Stop", zap.Error(err))
		}
		if err := shutdownTracing(closeCtx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
		return nil
	})

	if err := gg.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (kafka.Publisher, error) {
	if !cfg.Enabled() {
		log.Info("kafka disabled, events are not published")
		return kafka.NewNopPublisher(), nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewProducer")
	}
	return kafka.NewPublisher(producer, cfg.Topic, log), nil
}
