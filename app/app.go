package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/config"
	"github.com/openbookmanager/openbookmanager/internal/covers"
	"github.com/openbookmanager/openbookmanager/internal/handler"
	"github.com/openbookmanager/openbookmanager/internal/provider/googlebooks"
	"github.com/openbookmanager/openbookmanager/internal/provider/openlibrary"
	"github.com/openbookmanager/openbookmanager/internal/repository"
	"github.com/openbookmanager/openbookmanager/internal/server"
	"github.com/openbookmanager/openbookmanager/internal/service"
	"github.com/openbookmanager/openbookmanager/migrations"
	"github.com/openbookmanager/openbookmanager/pkg/auth"
	"github.com/openbookmanager/openbookmanager/pkg/logger"
	"github.com/openbookmanager/openbookmanager/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "openbookmanager")
	if cfg.Admin.JWTKey != "" {
		auth.JWTKey = []byte(cfg.Admin.JWTKey)
	}

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	coverStore, err := covers.NewStore(cfg.Covers.Dir, log)
	if err != nil {
		log.Fatal("cover store", zap.Error(err))
	}
	metadata := googlebooks.NewService(log, cfg.Metadata)
	coverSource := openlibrary.NewService(log, cfg.Metadata)

	svc := service.NewService(repo, metadata, coverSource, coverStore, log)

	h := handler.New(svc, svc, svc, cfg.Admin, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
