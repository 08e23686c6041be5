// Package sheets implements the spreadsheet-backed order ledger. The sheet
// is the system of record for fulfillment: rows are only ever appended,
// never updated or deleted.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/oguenfoude/bs/internal/adapter/config"
	"github.com/oguenfoude/bs/internal/adapter/metrics"
	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/oguenfoude/bs/internal/core/retry"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var headerRow = []interface{}{
	"معرف الطلب", "التاريخ", "الاسم الكامل", "الهاتف", "الولاية", "البلدية",
	"النموذج", "رقم النموذج", "الكمية", "التوصيل", "السعر الإجمالي", "ملاحظات", "الصورة",
}

type Ledger struct {
	cfg     *config.Sheets
	baseURL string
	logger  *zap.Logger
	metrics *metrics.Registry

	mu            sync.Mutex
	svc           *sheets.Service
	headerChecked bool
}

func NewLedger(cfg *config.Sheets, baseURL string, m *metrics.Registry, log *zap.Logger) (*Ledger, error) {
	return &Ledger{
		cfg:     cfg,
		baseURL: baseURL,
		logger:  log,
		metrics: m,
	}, nil
}

func (l *Ledger) Enabled() bool {
	return l.cfg.Enabled
}

// service initializes the Sheets client on first use. Missing credentials
// show up as this integration's failure, not as a startup crash.
func (l *Ledger) service(ctx context.Context) (*sheets.Service, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.svc != nil {
		return l.svc, nil
	}
	if l.cfg.SpreadsheetID == "" || l.cfg.CredentialsFile == "" {
		return nil, domain.ErrLedgerNotConfigured
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(l.cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("error creating sheets client: %w", err)
	}
	l.svc = svc
	return svc, nil
}

func (l *Ledger) Append(ctx context.Context, order *domain.ValidatedOrder) domain.DispatchOutcome {
	if !l.cfg.Enabled {
		return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true, Skipped: true}
	}

	row, err := retry.Do(ctx, retry.DefaultAttempts, retry.DefaultBaseDelay,
		func(ctx context.Context) (int64, error) {
			row, err := l.appendRow(ctx, order)
			if err != nil {
				l.metrics.RetryAttempts.WithLabelValues(string(domain.IntegrationLedger)).Inc()
				l.logger.Warn("sheet append attempt failed", zap.Error(err))
			}
			return row, err
		})
	if err != nil {
		l.metrics.IntegrationFailures.WithLabelValues(string(domain.IntegrationLedger)).Inc()
		return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Err: err}
	}

	return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true, RowNumber: row}
}

func (l *Ledger) appendRow(ctx context.Context, order *domain.ValidatedOrder) (int64, error) {
	svc, err := l.service(ctx)
	if err != nil {
		return 0, err
	}

	l.ensureHeader(ctx, svc)

	vr := &sheets.ValueRange{Values: [][]interface{}{rowValues(order, l.baseURL)}}
	resp, err := svc.Spreadsheets.Values.
		Append(l.cfg.SpreadsheetID, l.cfg.SheetName+"!A:M", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("error appending order row: %w", err)
	}

	if resp.Updates != nil {
		return parseRowNumber(resp.Updates.UpdatedRange), nil
	}
	return 0, nil
}

// ensureHeader writes the header row into an empty sheet once per process.
// Best-effort: a failure here is logged and the append proceeds on the
// assumption that headers already exist.
func (l *Ledger) ensureHeader(ctx context.Context, svc *sheets.Service) {
	l.mu.Lock()
	checked := l.headerChecked
	l.headerChecked = true
	l.mu.Unlock()
	if checked {
		return
	}

	resp, err := svc.Spreadsheets.Values.
		Get(l.cfg.SpreadsheetID, l.cfg.SheetName+"!A1:A1").
		Context(ctx).Do()
	if err != nil {
		l.logger.Warn("header check failed, assuming headers exist", zap.Error(err))
		return
	}
	if len(resp.Values) > 0 {
		return
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{headerRow}}
	_, err = svc.Spreadsheets.Values.
		Update(l.cfg.SpreadsheetID, l.cfg.SheetName+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		l.logger.Warn("header write failed, appending anyway", zap.Error(err))
	}
}

func (l *Ledger) Exists(ctx context.Context, clientRequestID string) (bool, error) {
	if !l.cfg.Enabled {
		return false, nil
	}

	svc, err := l.service(ctx)
	if err != nil {
		return false, err
	}

	resp, err := svc.Spreadsheets.Values.
		Get(l.cfg.SpreadsheetID, l.cfg.SheetName+"!A:A").
		Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("error reading ledger tokens: %w", err)
	}

	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if s, ok := row[0].(string); ok && s == clientRequestID {
			return true, nil
		}
	}
	return false, nil
}

// rowValues renders one ledger row. The last cell holds an IMAGE formula so
// the sheet shows the product preview from the public URL instead of raw
// binary data.
func rowValues(order *domain.ValidatedOrder, baseURL string) []interface{} {
	model, _ := domain.WatchByID(order.WatchModelID)
	return []interface{}{
		order.ClientRequestID,
		order.ReceivedAt.Format("2006-01-02 15:04:05"),
		order.FullName,
		order.Phone,
		order.WilayaNameAr,
		order.BaladiyaNameAr,
		model.NameAr,
		order.ModelNumber,
		order.Quantity,
		string(order.DeliveryOption),
		order.TotalPrice.String(),
		order.Notes,
		fmt.Sprintf("=IMAGE(%q)", domain.ImageURL(baseURL, order.WatchModelID)),
	}
}

// parseRowNumber extracts the appended row index from an updated range like
// "Orders!A12:M12". Zero when the range is not in that shape.
func parseRowNumber(updatedRange string) int64 {
	_, ref, found := strings.Cut(updatedRange, "!")
	if !found {
		return 0
	}
	ref, _, _ = strings.Cut(ref, ":")
	digits := strings.TrimLeft(ref, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
