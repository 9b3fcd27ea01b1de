// Package metrics provides Prometheus collection for auth lifecycle events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records auth lifecycle events against a Prometheus registry.
// It implements port.MetricsRecorder.
type Collector struct {
	registry      *prometheus.Registry
	logins        *prometheus.CounterVec
	loginFailures *prometheus.CounterVec
	logouts       prometheus.Counter
	accessDenied  *prometheus.CounterVec
	forcedLogouts prometheus.Counter
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubauth_logins_total",
			Help: "Successful logins by role",
		}, []string{"role"}),
		loginFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubauth_login_failures_total",
			Help: "Failed logins by reason",
		}, []string{"reason"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubauth_logouts_total",
			Help: "Logouts, user initiated or forced",
		}),
		accessDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubauth_access_denied_total",
			Help: "Access-denied navigation outcomes by path",
		}, []string{"path"}),
		forcedLogouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubauth_forced_logouts_total",
			Help: "Logouts triggered by the de-authentication countdown",
		}),
	}

	registry.MustRegister(
		c.logins,
		c.loginFailures,
		c.logouts,
		c.accessDenied,
		c.forcedLogouts,
	)

	return c
}

// RecordLogin records a successful login for a role
func (c *Collector) RecordLogin(role string) {
	c.logins.WithLabelValues(role).Inc()
}

// RecordLoginFailure records a failed login by reason
func (c *Collector) RecordLoginFailure(reason string) {
	c.loginFailures.WithLabelValues(reason).Inc()
}

// RecordLogout records a logout
func (c *Collector) RecordLogout() {
	c.logouts.Inc()
}

// RecordAccessDenied records a denied navigation for a path
func (c *Collector) RecordAccessDenied(path string) {
	c.accessDenied.WithLabelValues(path).Inc()
}

// RecordForcedLogout records a countdown-driven logout
func (c *Collector) RecordForcedLogout() {
	c.forcedLogouts.Inc()
}

// Handler returns the HTTP handler exposing the registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Noop is a MetricsRecorder that discards everything. Used when metrics are
// disabled and in tests.
type Noop struct{}

func (Noop) RecordLogin(string)        {}
func (Noop) RecordLoginFailure(string) {}
func (Noop) RecordLogout()             {}
func (Noop) RecordAccessDenied(string) {}
func (Noop) RecordForcedLogout()       {}
