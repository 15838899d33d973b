package metrics

import "testing"

func TestSummary_IncludesCounterTotals(t *testing.T) {
	RPCCallsTotal.WithLabelValues("api.mainnet-beta.solana.com", "getSlot").Add(3)
	RetriesTotal.WithLabelValues("getTransaction").Inc()
	EndpointFailoversTotal.Inc()

	totals := Summary()
	if totals == nil {
		t.Fatal("expected totals, got nil")
	}

	tests := []struct {
		name string
		min  float64
	}{
		{"deploytime_rpc_calls_total", 3},
		{"deploytime_retries_total", 1},
		{"deploytime_endpoint_failovers_total", 1},
	}

	for _, tt := range tests {
		got, ok := totals[tt.name]
		if !ok {
			t.Errorf("expected %s in summary, got %v", tt.name, totals)
			continue
		}
		if got < tt.min {
			t.Errorf("expected %s >= %v, got %v", tt.name, tt.min, got)
		}
	}
}
