package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleTTL is how long a client limiter is kept after its last request.
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a token bucket per client IP.
type RateLimit struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

// NewRateLimit creates a limiter allowing rps requests per second with the given burst.
func NewRateLimit(rps float64, burst int) *RateLimit {
	return &RateLimit{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// Handle rejects requests over the limit with 429.
func (r *RateLimit) Handle(c *gin.Context) {
	if !r.allow(c.ClientIP()) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
		return
	}
	c.Next()
}

func (r *RateLimit) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cl, ok := r.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.clients[ip] = cl
	}
	cl.lastSeen = now

	if now.Sub(r.lastSweep) > idleTTL {
		for key, other := range r.clients {
			if now.Sub(other.lastSeen) > idleTTL {
				delete(r.clients, key)
			}
		}
		r.lastSweep = now
	}

	return cl.limiter.AllowN(now, 1)
}
