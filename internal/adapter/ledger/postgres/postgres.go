// Package postgres implements the order ledger on top of Postgres as an
// alternative to the spreadsheet backend (LEDGER_BACKEND=postgres). Same
// append-only contract: rows are inserted and looked up, never changed.
package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oguenfoude/bs/internal/adapter/metrics"
	"github.com/oguenfoude/bs/internal/adapter/storage"
	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/oguenfoude/bs/internal/core/retry"
	"go.uber.org/zap"
)

type Ledger struct {
	db      *storage.DB
	enabled bool
	baseURL string
	logger  *zap.Logger
	metrics *metrics.Registry
}

func NewLedger(db *storage.DB, enabled bool, baseURL string, m *metrics.Registry, log *zap.Logger) (*Ledger, error) {
	return &Ledger{
		db:      db,
		enabled: enabled,
		baseURL: baseURL,
		logger:  log,
		metrics: m,
	}, nil
}

func (l *Ledger) Enabled() bool {
	return l.enabled
}

func (l *Ledger) Append(ctx context.Context, order *domain.ValidatedOrder) domain.DispatchOutcome {
	if !l.enabled {
		return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true, Skipped: true}
	}

	row, err := retry.Do(ctx, retry.DefaultAttempts, retry.DefaultBaseDelay,
		func(ctx context.Context) (int64, error) {
			row, err := l.insertOrder(ctx, order)
			if err != nil {
				l.metrics.RetryAttempts.WithLabelValues(string(domain.IntegrationLedger)).Inc()
				l.logger.Warn("order insert attempt failed", zap.Error(err))
			}
			return row, err
		})
	if err != nil {
		// A unique violation means a concurrent submission with the same
		// token already landed; the order is recorded either way.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true}
		}
		l.metrics.IntegrationFailures.WithLabelValues(string(domain.IntegrationLedger)).Inc()
		return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Err: err}
	}

	return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true, RowNumber: row}
}

func (l *Ledger) insertOrder(ctx context.Context, order *domain.ValidatedOrder) (int64, error) {
	statement := l.db.QueryBuilder.Insert("orders").
		Columns("client_request_id", "full_name", "phone", "wilaya_name_ar", "baladiya_name_ar",
			"watch_model_id", "model_number", "quantity", "delivery_option",
			"total_price", "notes", "image_url", "received_at").
		Values(order.ClientRequestID, order.FullName, order.Phone, order.WilayaNameAr, order.BaladiyaNameAr,
			order.WatchModelID, order.ModelNumber, order.Quantity, string(order.DeliveryOption),
			order.TotalPrice, order.Notes, domain.ImageURL(l.baseURL, order.WatchModelID), order.ReceivedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = l.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting order: %w", err)
	}
	return id, nil
}

func (l *Ledger) Exists(ctx context.Context, clientRequestID string) (bool, error) {
	if !l.enabled {
		return false, nil
	}

	statement := l.db.QueryBuilder.
		Select("1").
		From("orders").
		Where(sq.Eq{"client_request_id": clientRequestID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = l.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
