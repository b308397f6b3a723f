// Package metrics defines the Prometheus instrumentation for the
// sign-in flow. Counters live in a standalone package so both the HTTP
// handlers and any embedding application can reference them without
// import cycles.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	LoginsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "google_login_started_total",
		Help: "Login attempts redirected to the Google authorization endpoint",
	})

	LoginsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "google_login_completed_total",
		Help: "Login attempts that reached the provisioning hand-off successfully",
	})

	LoginsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "google_login_failed_total",
		Help: "Login attempts terminated before provisioning, by failure reason",
	}, []string{"reason"})
)

// Register registers the flow metrics on the given registry, or the
// default registry if nil. Double registration is tolerated.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	for _, c := range []prometheus.Collector{LoginsStarted, LoginsCompleted, LoginsFailed} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
