package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long a client's bucket may sit unused before it is dropped.
const idleAfter = 10 * time.Minute

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimit throttles each client address to perSec requests per second with
// a burst of burst. Install it after RealIP.
func RateLimit(perSec float64, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		visitors = map[string]*visitor{}
		swept    = time.Now()
	)

	allow := func(key string, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(swept) > idleAfter {
			for k, v := range visitors {
				if now.Sub(v.seen) > idleAfter {
					delete(visitors, k)
				}
			}
			swept = now
		}

		v, ok := visitors[key]
		if !ok {
			v = &visitor{lim: rate.NewLimiter(rate.Limit(perSec), burst)}
			visitors[key] = v
		}
		v.seen = now
		return v.lim.AllowN(now, 1)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(clientKey(r), time.Now()) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
