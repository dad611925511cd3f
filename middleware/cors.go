package middleware

import (
	"net/http"
	"slices"
	"time"

	"randevuapi/dto"
	"randevuapi/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var DefaultAllowedOrigins = []string{
	"https://drcagriyapar.com",
	"https://www.drcagriyapar.com",
	"http://localhost:3000",
	"http://localhost:5173",
}

// CORS lets through requests without an Origin header, reflects allowed
// origins (with credentials) and answers 403 with the failure envelope to
// everything else.
func CORS(cfg model.CORSConfig) gin.HandlerFunc {
	allowed := cfg.AllowedOrigins
	if len(allowed) == 0 {
		allowed = DefaultAllowedOrigins
	}
	allow := func(origin string) bool {
		return cfg.AllowAll || slices.Contains(allowed, origin)
	}

	apply := cors.New(cors.Config{
		AllowOriginFunc: allow,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodOptions,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders:     []string{"X-Requested-With", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && !sameOrigin(c, origin) && !allow(origin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail(dto.MsgOriginDenied))
			return
		}
		apply(c)
	}
}

// sameOrigin mirrors the cors package: such requests are not cross-origin.
func sameOrigin(c *gin.Context, origin string) bool {
	host := c.Request.Host
	return origin == "http://"+host || origin == "https://"+host
}
