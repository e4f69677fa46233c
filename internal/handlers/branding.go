package handlers

import (
	"github.com/gofiber/fiber/v3"

	"campusshare/internal/config"
)

// MergeBranding adds site branding to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}
