package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Submissions         *prometheus.CounterVec // outcome: accepted / rejected / duplicate / failed
	IntegrationFailures *prometheus.CounterVec // integration: ledger / email
	RetryAttempts       *prometheus.CounterVec // integration: ledger / email
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_submissions_total",
	}, []string{"outcome"})
	integrationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_integration_failures_total",
	}, []string{"integration"})
	retryAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_integration_retry_attempts_total",
	}, []string{"integration"})

	r.MustRegister(submissions, integrationFailures, retryAttempts)
	return &Registry{
		reg:                 r,
		Submissions:         submissions,
		IntegrationFailures: integrationFailures,
		RetryAttempts:       retryAttempts,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
