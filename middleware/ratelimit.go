package middleware

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"randevuapi/dto"
	"randevuapi/services/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit counts every request by client IP and rejects those over the
// limiter's ceiling with 429. Standard RateLimit-* headers are always set;
// legacy X-RateLimit-* headers never are.
func RateLimit(limiter ratelimit.Limiter, message string) gin.HandlerFunc {
	policy := strconv.Itoa(limiter.Max) + ";w=" + strconv.Itoa(int(limiter.Window.Seconds()))

	return func(c *gin.Context) {
		dec, err := limiter.Decide(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("[%s] ratelimit store error: %v", GetRequestID(c), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail(dto.MsgServerError))
			return
		}

		reset := int(math.Ceil(time.Until(dec.ResetAt).Seconds()))
		if reset < 0 {
			reset = 0
		}

		h := c.Writer.Header()
		h.Set("RateLimit-Policy", policy)
		h.Set("RateLimit-Limit", strconv.Itoa(dec.Limit))
		h.Set("RateLimit-Remaining", strconv.Itoa(dec.Remaining))
		h.Set("RateLimit-Reset", strconv.Itoa(reset))

		if !dec.Allowed {
			h.Set("Retry-After", strconv.Itoa(reset))
			log.Printf("[%s] ratelimit: %s over limit", GetRequestID(c), c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Fail(message))
			return
		}

		c.Next()
	}
}
