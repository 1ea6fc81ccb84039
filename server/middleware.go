package server

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/giygas/entresto-info/config"
	"github.com/giygas/entresto-info/handlers"
	"github.com/giygas/entresto-info/logging"
	"github.com/giygas/entresto-info/metrics"
	"github.com/juju/ratelimit"
)

const (
	bucketRate     = 3    // tokens per second
	bucketCapacity = 1000 // tokens
)

// RealIPMiddleware extracts the real IP from X-Forwarded-For header
func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// first hop is the client
			if idx := strings.Index(xff, ","); idx != -1 {
				xff = xff[:idx]
			}
			r.RemoteAddr = strings.TrimSpace(xff)
		}
		next.ServeHTTP(w, r)
	})
}

// BlockDirectAccessMiddleware rejects requests that bypass the reverse proxy,
// except from localhost
func BlockDirectAccessMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Real-IP") == "" && r.Header.Get("X-Forwarded-For") == "" {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if host == "127.0.0.1" || host == "::1" || host == "localhost" {
				next.ServeHTTP(w, r)
				return
			}

			logging.Warn("Direct access blocked", "remote_addr", r.RemoteAddr, "user_agent", r.UserAgent())
			handlers.RespondWithError(w, http.StatusForbidden, "Direct access not allowed")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestSizeMiddleware limits the size of request headers and body
func RequestSizeMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if contentLength := r.Header.Get("Content-Length"); contentLength != "" {
				if length, err := strconv.ParseInt(contentLength, 10, 64); err == nil && length > cfg.MaxRequestBody {
					logging.Warn("Request body too large",
						"content_length", length,
						"max_allowed", cfg.MaxRequestBody,
						"remote_addr", r.RemoteAddr,
						"user_agent", r.UserAgent())

					handlers.RespondWithError(w, http.StatusRequestEntityTooLarge,
						fmt.Sprintf("Request body too large. Maximum allowed size is %d bytes", cfg.MaxRequestBody))
					return
				}
			}

			// rough estimate, keys and values only
			headerSize := int64(0)
			for key, values := range r.Header {
				headerSize += int64(len(key))
				for _, value := range values {
					headerSize += int64(len(value))
				}
			}

			if headerSize > cfg.MaxHeaderSize {
				logging.Warn("Request headers too large",
					"header_size", headerSize,
					"max_allowed", cfg.MaxHeaderSize,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent())

				handlers.RespondWithError(w, http.StatusRequestHeaderFieldsTooLarge,
					fmt.Sprintf("Request headers too large. Maximum allowed size is %d bytes", cfg.MaxHeaderSize))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter manages per-client token buckets
type RateLimiter struct {
	clients map[string]*ratelimit.Bucket
	mu      sync.RWMutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*ratelimit.Bucket),
		stop:    make(chan struct{}),
	}
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(bucketRate, bucketCapacity)
			rl.clients[clientIP] = bucket
			metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
		}
		rl.mu.Unlock()
	}

	return bucket
}

// Cleanup drops clients whose bucket has refilled and returns how many were removed
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, bucket := range rl.clients {
		if bucket.Available() == bucket.Capacity() {
			delete(rl.clients, ip)
			removed++
		}
	}
	metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
	return removed
}

// StartCleanup runs Cleanup every interval until Stop
func (rl *RateLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := rl.Cleanup(); n > 0 {
					logging.Debug("Rate limiter cleanup", "removed", n)
				}
			case <-rl.stop:
				return
			}
		}
	}()
}

// Stop ends the cleanup loop
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.clients)
}

func getTokenCost(r *http.Request) int64 {
	path := r.URL.Path

	switch path {
	case "/metrics":
		return 0 // scrapes are free
	case "/health":
		return 5
	case "/":
		return 10
	case "/image":
		return 20
	case "/api/catalog":
		return 50 // whole catalog
	}

	switch {
	case strings.HasPrefix(path, "/tab/"):
		return 10
	case strings.HasPrefix(path, "/api/tabs/"):
		return 10
	}

	return 20
}

// clientKey identifies the client by host only, so new connections from the
// same address share one bucket
func clientKey(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil || host == "" {
		return remoteAddr
	}
	return host
}

// Middleware implements rate limiting using the client's token bucket
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bucket := rl.getBucket(clientKey(r.RemoteAddr))
		tokenCost := getTokenCost(r)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(bucketCapacity))
		w.Header().Set("X-RateLimit-Rate", strconv.Itoa(bucketRate))

		if bucket.TakeAvailable(tokenCost) < tokenCost {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Retry-After", "60")
			logging.Warn("Rate limit exceeded", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
			handlers.RespondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))
		next.ServeHTTP(w, r)
	})
}
