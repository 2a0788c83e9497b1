package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/csrf"
)

const HeaderCSRFToken = "X-CSRF-Token"

// RequireCSRF verifies the token header on state-changing requests.
// Safe methods pass through untouched.
func RequireCSRF(codec *csrf.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		sess, ok := c.Get("session")
		s, isSess := sess.(*Session)
		if !ok || !isSess {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "csrf token required",
				"request_id": GetRequestID(c),
			})
			return
		}

		token := c.GetHeader(HeaderCSRFToken)
		if token == "" || codec.Verify(token, s.ID) != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "csrf token invalid",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}
