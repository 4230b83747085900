package middleware

import (
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// SlidingWindowLimiter allows at most maxRequests per key inside any windowSize span.
type SlidingWindowLimiter struct {
	windowSize     time.Duration
	maxRequests    int
	requestRecords map[string][]time.Time
	mu             sync.Mutex
	stop           chan struct{}
	stopOnce       sync.Once
}

func NewSlidingWindowLimiter(windowSize time.Duration, maxRequests int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windowSize:     windowSize,
		maxRequests:    maxRequests,
		requestRecords: make(map[string][]time.Time),
		stop:           make(chan struct{}),
	}
}

func (l *SlidingWindowLimiter) Allow(key string) bool {
	return l.allowAt(key, time.Now())
}

func (l *SlidingWindowLimiter) allowAt(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := now.Add(-l.windowSize)
	records := l.requestRecords[key]
	for len(records) > 0 && !records[0].After(windowStart) {
		records = records[1:]
	}

	if len(records) >= l.maxRequests {
		l.requestRecords[key] = records
		return false
	}

	l.requestRecords[key] = append(records, now)
	return true
}

// StartCleanup drops idle keys every interval until Stop is called.
func (l *SlidingWindowLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.cleanup(time.Now())
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *SlidingWindowLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *SlidingWindowLimiter) cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := now.Add(-2 * l.windowSize)
	for key, records := range l.requestRecords {
		if len(records) == 0 || records[len(records)-1].Before(threshold) {
			delete(l.requestRecords, key)
		}
	}
}

func RateLimitMiddleware(limiter *SlidingWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(keyFunc(c)) {
				return service.NewErrorResponse[any](&service.ErrRateLimited).Response(c, GetSession(c))
			}
			return next(c)
		}
	}
}

func IPKeyFunc(c echo.Context) string {
	return c.RealIP()
}

// CombinedKeyFunc keys on client ip and route
func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}
