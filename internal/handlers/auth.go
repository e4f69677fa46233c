package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/crypto/bcrypt"

	"campusshare/internal/config"
	"campusshare/internal/db"
	"campusshare/internal/middleware"
	"campusshare/internal/models"
	"campusshare/internal/validation"
)

// AuthHandler handles email/password signup and login.
type AuthHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(database *db.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: database, cfg: cfg}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c fiber.Ctx) error {
	return c.Render("login", MergeBranding(fiber.Map{
		"SSOEnabled": h.cfg.IsSSOEnabled(),
	}, h.cfg))
}

// SignupPage renders the signup form.
func (h *AuthHandler) SignupPage(c fiber.Ctx) error {
	return c.Render("signup", MergeBranding(fiber.Map{}, h.cfg))
}

// Signup creates a new local account. Validation happens before any
// database call, and each identity error maps to its own message.
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if email == "" || password == "" {
		return htmxError(c, "Please fill both fields")
	}
	if !validation.ValidateEmail(email) {
		return htmxError(c, "Invalid email format.")
	}
	if ok, msg := validation.ValidatePassword(password); !ok {
		return htmxError(c, msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        email,
		Name:         c.FormValue("name"),
		PasswordHash: string(hash),
	}
	if err := h.db.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return htmxError(c, "Email already registered. Try logging in.")
		}
		return err
	}

	return c.SendString(
		`<div class="p-3 rounded-lg bg-green-50 text-green-700 text-sm">Account created successfully! Now log in with the same credentials.</div>`,
	)
}

// Login checks the credentials and stores the user id in the session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if email == "" || password == "" {
		return htmxError(c, "Please fill both fields")
	}

	user, err := h.db.GetUserByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return htmxError(c, "No account found for that email.")
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return htmxError(c, "Incorrect password.")
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	sess.Set(middleware.SessionUserKey, user.ID.String())

	c.Set("HX-Redirect", "/")
	return c.SendString("")
}

// Logout clears the user session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/login")
}
