package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/csrf"
	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/http/validation"
	"github.com/chetanraj-2002/portfolio/internal/modules/auth"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

type AuthHandler struct {
	Auth       *auth.Service
	SessionCfg middleware.SessionCfg
	CSRF       *csrf.Codec
}

func NewAuthHandler(authSvc *auth.Service, sessionCfg middleware.SessionCfg, csrfCodec *csrf.Codec) *AuthHandler {
	return &AuthHandler{Auth: authSvc, SessionCfg: sessionCfg, CSRF: csrfCodec}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Please correct the highlighted fields.", errs))
		return
	}

	u, err := h.Auth.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess, err := middleware.CreateSession(h.SessionCfg, u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.SetCookie(h.SessionCfg.CookieName, sess.ID, int(h.SessionCfg.TTL.Seconds()), "/", "", h.SessionCfg.Secure, true)

	token, err := h.CSRF.Issue(sess.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"role":      u.Role,
			"full_name": u.FullName,
		},
		"csrf_token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessVal, ok := c.Get("session"); ok {
		if sess, ok := sessVal.(*middleware.Session); ok {
			if err := middleware.DeleteSession(h.SessionCfg, sess.ID); err != nil {
				middleware.Fail(c, apperr.Wrap(err))
				return
			}
		}
	}
	c.SetCookie(h.SessionCfg.CookieName, "", -1, "/", "", h.SessionCfg.Secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports the signed-in user and a fresh token for the SPA to use
// on mutating calls.
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Not signed in."))
		return
	}

	var token string
	if sessVal, ok := c.Get("session"); ok {
		if sess, ok := sessVal.(*middleware.Session); ok {
			var err error
			token, err = h.CSRF.Issue(sess.ID)
			if err != nil {
				middleware.Fail(c, apperr.Wrap(err))
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"role":      u.Role,
			"full_name": u.FullName,
		},
		"csrf_token": token,
	})
}
