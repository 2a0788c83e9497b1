package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/modules/profile"
	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

// ownerID resolves the admin profile every managed record hangs off.
// The profile repo memoizes the lookup per user.
func ownerID(c *gin.Context, profiles *profile.Repo) (string, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return "", apperr.UnauthorizedErr("Not signed in.")
	}
	return profiles.OwnerID(c.Request.Context(), u.ID, u.Email, u.FullName)
}
