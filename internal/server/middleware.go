package server

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Deepak6204/schedular-server/internal/auth"
)

const userIDKey = "userID"

// authRequired accepts a session token from the Authorization header or the
// token cookie and stores the authenticated user id in the request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			respondError(c, http.StatusUnauthorized, "not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := s.tokens.VerifySession(token)
		if errors.Is(err, auth.ErrTokenExpired) {
			respondError(c, http.StatusUnauthorized, "token expired")
			c.Abort()
			return
		}
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// 100 requests per client over a 15 minute window.
const (
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 100
)

// rateLimit bounds the signup/login endpoints per client IP.
func (s *Server) rateLimit() gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = map[string]*rate.Limiter{}
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Every(rateLimitWindow/rateLimitMax), rateLimitMax)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			respondError(c, http.StatusTooManyRequests, "too many requests from this IP, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
