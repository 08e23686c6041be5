// Package smtp implements the staff order alert over SMTP.
package smtp

import (
	"context"
	"fmt"

	"github.com/oguenfoude/bs/internal/adapter/config"
	"github.com/oguenfoude/bs/internal/adapter/metrics"
	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/oguenfoude/bs/internal/core/retry"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Notifier struct {
	cfg     *config.SMTP
	baseURL string
	logger  *zap.Logger
	metrics *metrics.Registry
}

func NewNotifier(cfg *config.SMTP, baseURL string, m *metrics.Registry, log *zap.Logger) (*Notifier, error) {
	return &Notifier{
		cfg:     cfg,
		baseURL: baseURL,
		logger:  log,
		metrics: m,
	}, nil
}

func (n *Notifier) Enabled() bool {
	return n.cfg.Enabled
}

func (n *Notifier) Notify(ctx context.Context, order *domain.ValidatedOrder) domain.DispatchOutcome {
	if !n.cfg.Enabled {
		return domain.DispatchOutcome{Integration: domain.IntegrationNotifier, Success: true, Skipped: true}
	}

	_, err := retry.Do(ctx, retry.DefaultAttempts, retry.DefaultBaseDelay,
		func(ctx context.Context) (struct{}, error) {
			err := n.send(order)
			if err != nil {
				n.metrics.RetryAttempts.WithLabelValues(string(domain.IntegrationNotifier)).Inc()
				n.logger.Warn("order alert attempt failed", zap.Error(err))
			}
			return struct{}{}, err
		})
	if err != nil {
		n.metrics.IntegrationFailures.WithLabelValues(string(domain.IntegrationNotifier)).Inc()
		return domain.DispatchOutcome{Integration: domain.IntegrationNotifier, Err: err}
	}

	return domain.DispatchOutcome{Integration: domain.IntegrationNotifier, Success: true}
}

// send delivers one alert to the whole recipient list. Each attempt dials
// and authenticates a fresh connection; nothing is pooled across retries.
func (n *Notifier) send(order *domain.ValidatedOrder) error {
	if n.cfg.Host == "" || n.cfg.From == "" || len(n.cfg.Recipients) == 0 {
		return domain.ErrNotifierNotConfigured
	}

	model, _ := domain.WatchByID(order.WatchModelID)

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.Recipients...)
	m.SetHeader("Subject", fmt.Sprintf("طلب جديد: %s — %s", model.NameAr, order.FullName))
	m.SetBody("text/plain", textBody(order, n.baseURL))
	m.AddAlternative("text/html", htmlBody(order, n.baseURL))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	sc, err := d.Dial()
	if err != nil {
		return fmt.Errorf("error connecting to mail transport: %w", err)
	}
	defer sc.Close()

	if err := gomail.Send(sc, m); err != nil {
		return fmt.Errorf("error sending order alert: %w", err)
	}
	return nil
}
