// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
	stop     chan struct{}
	once     sync.Once
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
		stop:     make(chan struct{}),
	}

	go rl.cleanupVisitors()

	return rl
}

// Stop ends the background cleanup.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mtx.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mtx.Unlock()
		}
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getVisitor(c.ClientIP()).Allow() {
			lang := utils.GetLangFromContext(c)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", i18n.T(lang, i18n.KeyRateLimited), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimiters groups the limiters used by the router.
type RateLimiters struct {
	General *RateLimiter
	Auth    *RateLimiter
	Upload  *RateLimiter
}

func NewRateLimiters() *RateLimiters {
	return &RateLimiters{
		General: NewRateLimiter(rate.Every(100*time.Millisecond), 20),
		Auth:    NewRateLimiter(rate.Every(12*time.Second), 5),
		Upload:  NewRateLimiter(rate.Every(6*time.Second), 10),
	}
}

func (r *RateLimiters) Stop() {
	r.General.Stop()
	r.Auth.Stop()
	r.Upload.Stop()
}
