package provider

import (
	"testing"
	"time"
)

func TestMonitor_DetectThrottlePattern(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		body   string
		expect bool
	}{
		{"Rate limit exceeded", true},
		{"Too Many Requests", true},
		{"daily request count exceeded, try again later", true},
		{"Monthly quota exceeded", true},
		{"Internal server error", false},
		{"connection reset by peer", false},
	}

	for _, tt := range tests {
		if got := m.DetectThrottlePattern(tt.body); got != tt.expect {
			t.Errorf("DetectThrottlePattern(%q) = %v, want %v", tt.body, got, tt.expect)
		}
	}
}

func TestMonitor_ThrottleCooldown(t *testing.T) {
	m := NewMonitor()

	if m.Status() != StatusHealthy {
		t.Fatalf("expected healthy, got %v", m.Status())
	}

	m.RecordThrottle(429, "15")
	if m.Status() != StatusThrottled {
		t.Errorf("expected throttled after 429, got %v", m.Status())
	}

	remaining := m.RetryAfter()
	if remaining <= 0 || remaining > 15*time.Second {
		t.Errorf("expected retry-after within (0, 15s], got %v", remaining)
	}
}

func TestMonitor_BlockedAfter403(t *testing.T) {
	m := NewMonitor()

	m.RecordThrottle(403, "")
	if m.Status() != StatusBlocked {
		t.Errorf("expected blocked after 403, got %v", m.Status())
	}

	count429, count403 := m.ThrottleCounts()
	if count429 != 0 || count403 != 1 {
		t.Errorf("expected counts (0, 1), got (%d, %d)", count429, count403)
	}
}

func TestMonitor_InvalidRetryAfterFallsBack(t *testing.T) {
	m := NewMonitor()

	m.RecordThrottle(429, "not-a-number")
	if m.Status() != StatusThrottled {
		t.Errorf("expected throttled, got %v", m.Status())
	}
	if m.RetryAfter() > defaultThrottleCooldown {
		t.Errorf("expected fallback cooldown <= %v, got %v", defaultThrottleCooldown, m.RetryAfter())
	}
}
