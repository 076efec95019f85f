package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler that serves the registry in Prometheus
// exposition format. The library does not own a server; embedding applications
// mount the handler wherever their operational endpoints live:
//
//	mux.Handle("/metrics", registry.Handler())
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(
		r.prometheusRegistry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
}
