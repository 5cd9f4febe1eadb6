package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// visitor guarda o limitador de um IP e o último acesso, para expiração.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter limita tentativas de login por IP com token bucket.
// Protege o endpoint de autenticação contra força bruta.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	ttl      time.Duration
}

// NewLoginRateLimiter cria o limitador e dispara a limpeza periódica dos
// IPs inativos.
func NewLoginRateLimiter(r rate.Limit, burst int) *LoginRateLimiter {
	l := &LoginRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		ttl:      10 * time.Minute,
	}
	go l.cleanup()
	return l
}

func (l *LoginRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (l *LoginRateLimiter) cleanup() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > l.ttl {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Middleware rejeita com 429 as requisições acima do limite do IP.
func (l *LoginRateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.limiterFor(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "muitas tentativas, aguarde um momento",
			})
		}
		return c.Next()
	}
}
