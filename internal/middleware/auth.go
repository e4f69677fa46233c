package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"campusshare/internal/db"
	"campusshare/internal/models"
)

// SessionUserKey is the session key holding the logged-in user's id.
const SessionUserKey = "user_id"

// AuthMiddleware resolves the logged-in user from the request session. There
// is no process-global session state; each request carries its own identity.
type AuthMiddleware struct {
	db *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(database *db.DB) *AuthMiddleware {
	return &AuthMiddleware{db: database}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	user := m.currentUser(c)
	if user == nil {
		return c.Redirect().To("/login")
	}
	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := m.currentUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

func (m *AuthMiddleware) currentUser(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}

	raw := sess.Get(SessionUserKey)
	if raw == nil {
		return nil
	}

	idStr, ok := raw.(string)
	if !ok {
		sess.Delete(SessionUserKey)
		return nil
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		sess.Delete(SessionUserKey)
		return nil
	}

	user, err := m.db.GetUserByID(c.Context(), id)
	if err != nil {
		sess.Delete(SessionUserKey)
		return nil
	}

	return user
}
