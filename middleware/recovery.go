package middleware

import (
	"log"
	"net/http"

	"randevuapi/dto"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the generic failure envelope. The Origin is
// echoed back so browsers can read the error instead of a CORS failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("[%s] unexpected error: %v", GetRequestID(c), err)
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail(dto.MsgServerError))
	})
}

// NotFound answers unknown routes with the failure envelope.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Fail(dto.MsgNotFound))
}
