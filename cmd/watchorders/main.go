package main

import (
	"context"
	"fmt"

	"github.com/oguenfoude/bs/internal/adapter/config"
	"github.com/oguenfoude/bs/internal/adapter/handler/http"
	"github.com/oguenfoude/bs/internal/adapter/ledger/postgres"
	"github.com/oguenfoude/bs/internal/adapter/ledger/sheets"
	"github.com/oguenfoude/bs/internal/adapter/logger"
	"github.com/oguenfoude/bs/internal/adapter/metrics"
	"github.com/oguenfoude/bs/internal/adapter/notifier/smtp"
	"github.com/oguenfoude/bs/internal/adapter/storage"
	"github.com/oguenfoude/bs/internal/core/port"
	"github.com/oguenfoude/bs/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	m := metrics.NewRegistry()

	var ledger port.Ledger
	switch conf.App.LedgerBackend {
	case config.LedgerBackendPostgres:
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}
		ledger, err = postgres.NewLedger(db, conf.Sheets.Enabled, conf.App.PublicBaseURL, m, log.Named("Ledger"))
		if err != nil {
			log.Error("ledger creating error", zap.Error(err))
			return
		}
	default:
		ledger, err = sheets.NewLedger(conf.Sheets, conf.App.PublicBaseURL, m, log.Named("Ledger"))
		if err != nil {
			log.Error("ledger creating error", zap.Error(err))
			return
		}
	}

	notifier, err := smtp.NewNotifier(conf.SMTP, conf.App.PublicBaseURL, m, log.Named("Notifier"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(ledger, notifier, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, m, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf, orderHandler, m)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
