package webhook

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityValidator validates Telegram webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	v := &SecurityValidator{config: config}
	if config.RateLimitPerMin > 0 {
		v.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}
	return v
}

// ValidateSecretToken compares the header Telegram echoes back with the secret given
// to setWebhook. No configured secret accepts every request.
func (v *SecurityValidator) ValidateSecretToken(token string) error {
	if v.config.Secret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.config.Secret)) != 1 {
		return ErrInvalidSecret
	}
	return nil
}

// ValidateIPAddress checks if request IP is whitelisted
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil // No IP restriction
	}

	ip := extractIP(r)
	parsed := net.ParseIP(ip)

	for _, allowedIP := range v.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		// Check CIDR range
		if strings.Contains(allowedIP, "/") && parsed != nil {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces the per-chat update rate.
func (v *SecurityValidator) CheckRateLimit(chatID int64) error {
	if v.rateLimiter == nil {
		return nil
	}
	return v.rateLimiter.Allow(strconv.FormatInt(chatID, 10))
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per key and forgets idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 chats tracked
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for chat %s", ErrRateLimitExceeded, key)
	}
	return nil
}
