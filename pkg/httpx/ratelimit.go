package httpx

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
)

// maxKeyBody caps how much of a request body a key extractor will buffer.
const maxKeyBody = 64 << 10

// RateLimit is a token bucket refilled with Requests tokens per Window that
// holds at most Burst tokens.
type RateLimit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

func (l RateLimit) perSecond() rate.Limit {
	return rate.Limit(float64(l.Requests) / l.Window.Seconds())
}

// refill is how long an empty bucket takes to fill up.
func (l RateLimit) refill() time.Duration {
	return time.Duration(float64(l.Window) * float64(l.Burst) / float64(l.Requests))
}

// FromEnv overrides l with RATELIMIT_<PROFILE>_REQUESTS, _WINDOW_SEC and
// _BURST. Values that are not positive integers are ignored.
func (l RateLimit) FromEnv(profile string) RateLimit {
	prefix := "RATELIMIT_" + strings.ToUpper(profile) + "_"
	if n, ok := positiveEnv(prefix + "REQUESTS"); ok {
		l.Requests = n
	}
	if n, ok := positiveEnv(prefix + "WINDOW_SEC"); ok {
		l.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv(prefix + "BURST"); ok {
		l.Burst = n
	}
	return l
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	return n, err == nil && n > 0
}

// RateLimits are the profiles routes pick from.
type RateLimits struct {
	Strict   RateLimit // login and register, per IP and identity
	Moderate RateLimit // session upkeep and catalog mutations
	Lenient  RateLimit // authenticated reads and health checks
	Public   RateLimit // moderation checks
}

func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   RateLimit{Requests: 5, Window: time.Minute, Burst: 5},
		Moderate: RateLimit{Requests: 20, Window: time.Minute, Burst: 20},
		Lenient:  RateLimit{Requests: 100, Window: time.Minute, Burst: 100},
		Public:   RateLimit{Requests: 1000, Window: time.Minute, Burst: 1000},
	}
}

// RateLimitsFromEnv is DefaultRateLimits with the RATELIMIT_* overrides
// applied. The e2e suite relaxes the limits this way.
func RateLimitsFromEnv() RateLimits {
	d := DefaultRateLimits()
	return RateLimits{
		Strict:   d.Strict.FromEnv("strict"),
		Moderate: d.Moderate.FromEnv("moderate"),
		Lenient:  d.Lenient.FromEnv("lenient"),
		Public:   d.Public.FromEnv("public"),
	}
}

// KeyExtractor picks the bucket a request is counted against. Requests
// with an empty key are not limited.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the client IP, trusting the first X-Forwarded-For
// hop and then X-Real-IP.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor returns the authenticated user id, or "".
func UserIDKeyExtractor(r *http.Request) string {
	userID, _ := r.Context().Value(CtxKeyUserID).(string)
	return userID
}

// UserOrIPKeyExtractor keys authenticated requests by user and IP.
var UserOrIPKeyExtractor = CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor)

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// JSONFieldKeyExtractor extracts a top-level string field from a JSON
// request body, e.g. the identity of a login attempt. The body is restored
// so the handler can still decode it.
func JSONFieldKeyExtractor(field string) KeyExtractor {
	return func(r *http.Request) string {
		if r.Body == nil || r.Body == http.NoBody {
			return ""
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxKeyBody))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil || !gjson.ValidBytes(raw) {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(gjson.GetBytes(raw, field).String()))
	}
}

// RateLimiter keeps one token bucket per key. A bucket left alone long
// enough to refill is dropped on the next sweep.
type RateLimiter struct {
	limit    RateLimit
	key      KeyExtractor
	clock    clockwork.Clock
	rejected prometheus.Counter

	mu        sync.Mutex
	buckets   map[string]*bucket
	idle      time.Duration
	nextSweep time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

type RateLimiterOption func(*RateLimiter)

// WithRateLimitClock replaces the wall clock, for tests.
func WithRateLimitClock(c clockwork.Clock) RateLimiterOption {
	return func(rl *RateLimiter) { rl.clock = c }
}

// WithRejections counts refused requests on c.
func WithRejections(c prometheus.Counter) RateLimiterOption {
	return func(rl *RateLimiter) { rl.rejected = c }
}

func NewRateLimiter(limit RateLimit, key KeyExtractor, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		key:     key,
		clock:   clockwork.NewRealClock(),
		buckets: make(map[string]*bucket),
		idle:    max(limit.Window, limit.refill()),
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow takes a token from key's bucket. When the bucket is empty it
// reports how long until the next token.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rl.limit.perSecond(), rl.limit.Burst)}
		rl.buckets[key] = b
	}
	b.seen = now

	if b.lim.AllowN(now, 1) {
		return true, 0
	}
	res := b.lim.ReserveN(now, 1)
	delay := res.DelayFrom(now)
	res.CancelAt(now)
	return false, delay
}

// Len is the number of live buckets.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

func (rl *RateLimiter) sweep(now time.Time) {
	if now.Before(rl.nextSweep) {
		return
	}
	rl.nextSweep = now.Add(rl.idle)
	for key, b := range rl.buckets {
		if now.Sub(b.seen) >= rl.idle {
			delete(rl.buckets, key)
		}
	}
}

// Middleware refuses requests over the limit with 429 and a Retry-After in
// whole seconds.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := rl.key(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			ok, delay := rl.Allow(key)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			if rl.rejected != nil {
				rl.rejected.Inc()
			}
			retryAfter := max(int(math.Ceil(delay.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit.Requests))
			w.Header().Set("X-RateLimit-Window", rl.limit.Window.String())

			log.Warn("rate limit exceeded", "key", key, "endpoint", r.URL.Path, "retry_after", retryAfter)
			WriteJSON(w, http.StatusTooManyRequests, map[string]any{
				"code":    http.StatusTooManyRequests,
				"message": fmt.Sprintf("too many requests, retry in %ds", retryAfter),
			})
		})
	}
}

// RateLimitMiddleware limits requests grouped by key.
func RateLimitMiddleware(limit RateLimit, key KeyExtractor, opts ...RateLimiterOption) Middleware {
	return NewRateLimiter(limit, key, opts...).Middleware()
}
