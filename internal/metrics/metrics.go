package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCCallsTotal tracks RPC calls per provider and method
	RPCCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploytime_rpc_calls_total",
			Help: "Total number of RPC calls",
		},
		[]string{"provider", "method"},
	)

	// RPCErrorsTotal tracks RPC errors per provider and method
	RPCErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploytime_rpc_errors_total",
			Help: "Total number of RPC errors",
		},
		[]string{"provider", "method"},
	)

	// RetriesTotal tracks scheduled retries per operation
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploytime_retries_total",
			Help: "Total number of scheduled retries",
		},
		[]string{"operation"},
	)

	// EndpointFailoversTotal tracks endpoint advances after terminal failures
	EndpointFailoversTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deploytime_endpoint_failovers_total",
			Help: "Total number of endpoint failovers",
		},
	)
)

// Summary returns this process's counter totals keyed by metric name, with
// labels summed away. Used for the end-of-run debug log.
func Summary() map[string]float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil
	}

	totals := make(map[string]float64)
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, "deploytime_") {
			continue
		}
		var sum float64
		for _, m := range family.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
		totals[name] = sum
	}
	return totals
}
