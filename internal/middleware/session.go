package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware resolves the caller's session id from the X-Session-ID
// header, issuing a fresh one when absent. The id is echoed back on every
// response so a first-time client can adopt it.
func SessionMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(sessionHeader)
		if sid == "" {
			sid = uuid.NewString()
			log.Debugf("Middleware: issued new session id %s", sid)
		}

		c.Set("session_id", sid)
		c.Writer.Header().Set(sessionHeader, sid)
		c.Next()
	}
}
