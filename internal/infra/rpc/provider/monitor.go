package provider

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// Status represents the throttle state of a provider.
type Status int

const (
	StatusHealthy   Status = iota // Provider is working normally
	StatusThrottled               // Provider is rate limiting
	StatusBlocked                 // Provider has blocked this client
)

// defaultThrottleCooldown is used when the node sends no Retry-After header.
const defaultThrottleCooldown = 30 * time.Second

// blockedCooldown applies after a 403.
const blockedCooldown = 5 * time.Minute

// Monitor tracks rate limiting and blocking for one provider.
type Monitor struct {
	mu sync.RWMutex

	throttlePatterns []string

	count429     int
	count403     int
	lastThrottle time.Time
	retryAfter   time.Duration
	blockedUntil time.Time
}

// NewMonitor creates a monitor with the common throttle phrases seen on
// public RPC nodes.
func NewMonitor() *Monitor {
	return &Monitor{
		throttlePatterns: []string{
			"rate limit exceeded",
			"too many requests",
			"daily request count exceeded",
			"request limit reached",
			"monthly quota exceeded",
		},
	}
}

// RecordThrottle records a 429 or 403 response. retryAfter is the raw
// Retry-After header value in seconds; empty falls back to a default.
func (m *Monitor) RecordThrottle(statusCode int, retryAfter string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastThrottle = time.Now()

	switch statusCode {
	case 403:
		m.count403++
		m.blockedUntil = time.Now().Add(blockedCooldown)
	default:
		m.count429++
		m.retryAfter = defaultThrottleCooldown
		if secs, err := strconv.Atoi(retryAfter); err == nil && secs > 0 {
			m.retryAfter = time.Duration(secs) * time.Second
		}
	}
}

// Status returns the current throttle state.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	if now.Before(m.blockedUntil) {
		return StatusBlocked
	}
	if m.count429 > 0 && now.Before(m.lastThrottle.Add(m.retryAfter)) {
		return StatusThrottled
	}
	return StatusHealthy
}

// RetryAfter returns the remaining cooldown, zero when healthy.
func (m *Monitor) RetryAfter() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	until := m.lastThrottle.Add(m.retryAfter)
	if remaining := time.Until(until); remaining > 0 && m.count429 > 0 {
		return remaining
	}
	return 0
}

// ThrottleCounts returns how many 429 and 403 responses this provider has
// produced.
func (m *Monitor) ThrottleCounts() (count429, count403 int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.count429, m.count403
}

// DetectThrottlePattern reports whether a response body or error message
// looks like a rate limit that arrived without a 429 status.
func (m *Monitor) DetectThrottlePattern(s string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range m.throttlePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
