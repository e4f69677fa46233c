package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"campusshare/internal/blob"
	"campusshare/internal/config"
	"campusshare/internal/db"
	"campusshare/internal/email"
	"campusshare/internal/metrics"
	"campusshare/internal/models"
	"campusshare/internal/pipeline"
	"campusshare/internal/validation"
)

// ResourceHandler handles resource listing, posting, and requesting.
type ResourceHandler struct {
	db       *db.DB
	blobs    *blob.Store
	signer   *blob.Signer
	pipeline *pipeline.Pipeline
	notifier *email.Notifier
	cfg      *config.Config
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(database *db.DB, blobs *blob.Store, signer *blob.Signer, pl *pipeline.Pipeline, notifier *email.Notifier, cfg *config.Config) *ResourceHandler {
	return &ResourceHandler{
		db:       database,
		blobs:    blobs,
		signer:   signer,
		pipeline: pl,
		notifier: notifier,
		cfg:      cfg,
	}
}

// resourceView pairs a resource with its signed download URL for templates.
type resourceView struct {
	models.Resource
	FileURL string
}

func (h *ResourceHandler) withFileURLs(resources []models.Resource) []resourceView {
	views := make([]resourceView, 0, len(resources))
	for _, res := range resources {
		view := resourceView{Resource: res}
		if res.FileID != nil {
			view.FileURL = h.signer.SignedURL(*res.FileID)
		}
		views = append(views, view)
	}
	return views
}

// Index renders the home page with the newest available resources.
func (h *ResourceHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	resources, err := h.db.ListAvailableResources(c.Context(), 50)
	if err != nil {
		return err
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"User":       user,
		"Resources":  h.withFileURLs(resources),
		"Categories": models.Categories,
	}, h.cfg))
}

// Search renders the search results page. Only available resources are
// searchable; requested ones drop out of results.
func (h *ResourceHandler) Search(c fiber.Ctx) error {
	query := c.Query("q", "")
	user, _ := c.Locals("user").(*models.User)

	resources, err := h.db.SearchAvailableResources(c.Context(), query, 100)
	if err != nil {
		return err
	}

	// If HTMX request, return just the list
	if c.Get("HX-Request") == "true" {
		return c.Render("partials/resource_list", fiber.Map{
			"Resources": h.withFileURLs(resources),
			"User":      user,
		}, "")
	}

	return c.Render("search", MergeBranding(fiber.Map{
		"Resources": h.withFileURLs(resources),
		"Query":     query,
		"User":      user,
	}, h.cfg))
}

// MyResources renders the current user's own postings, whatever their status.
func (h *ResourceHandler) MyResources(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	resources, err := h.db.ListResourcesByOwner(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render("my_resources", MergeBranding(fiber.Map{
		"Resources": h.withFileURLs(resources),
		"User":      user,
	}, h.cfg))
}

// New renders the resource posting form.
func (h *ResourceHandler) New(c fiber.Ctx) error {
	return c.Render("new", MergeBranding(fiber.Map{
		"User":       c.Locals("user"),
		"Categories": models.Categories,
	}, h.cfg))
}

// Create handles posting a new resource. The row is persisted as soon as the
// fields validate; the moderation pipeline runs afterwards and its result is
// advisory, so a pipeline failure never unwinds the posting.
func (h *ResourceHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	category := c.FormValue("category")

	if title == "" || description == "" {
		return htmxError(c, "Title and description are required")
	}
	if ok, msg := validation.ValidateTitle(title); !ok {
		return htmxError(c, msg)
	}
	if ok, msg := validation.ValidateDescription(description); !ok {
		return htmxError(c, msg)
	}
	if !models.ValidCategory(category) {
		return htmxError(c, "Invalid category")
	}

	res := &models.Resource{
		Title:       title,
		Description: description,
		Category:    category,
		OwnerID:     user.ID,
		OwnerEmail:  user.Email,
	}

	// Optional file attachment
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return htmxError(c, "Could not read uploaded file")
		}
		fileID, err := h.blobs.Upload(c.Context(), fileHeader.Filename, file)
		file.Close()
		if err != nil {
			log.Printf("File upload failed: %v", err)
			return htmxError(c, "File upload failed, please try again")
		}
		res.FileID = &fileID
		res.FileName = &fileHeader.Filename
	}

	if err := h.db.CreateResource(c.Context(), res); err != nil {
		return err
	}

	outcome, err := h.pipeline.Run(c.Context(), pipeline.Submission{
		Title:       res.Title,
		Description: res.Description,
		Category:    res.Category,
		Owner:       user.Email,
	})
	if err != nil {
		log.Printf("Moderation pipeline failed for resource %s: %v", res.ID, err)
		metrics.RecordOutcome("error")
		return c.Render("partials/post_result", fiber.Map{
			"Title":   res.Title,
			"Warning": "Your resource was posted, but the review step did not complete: " + err.Error(),
		}, "")
	}

	if outcome.Approved() {
		metrics.RecordOutcome("approved")
	} else {
		metrics.RecordOutcome("rejected")
		h.notifier.NotifyResourceRejected(c.Context(), res, outcome.Verdict.Reason)
	}

	return c.Render("partials/post_result", fiber.Map{
		"Title":    res.Title,
		"Approved": outcome.Approved(),
		"Message":  outcome.Message(),
	}, "")
}

// Request handles requesting an available resource via HTMX. The first
// requester wins; later requests see the resource as unavailable.
func (h *ResourceHandler) Request(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.RequestResource(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrResourceNotFound) {
			return htmxError(c, "Resource not found")
		}
		if errors.Is(err, db.ErrResourceUnavailable) {
			return htmxError(c, "This resource has already been requested")
		}
		return err
	}

	res, err := h.db.GetResourceByID(c.Context(), id)
	if err != nil {
		return err
	}

	h.notifier.NotifyResourceRequested(c.Context(), res, user)

	return c.Render("partials/request_success", fiber.Map{
		"Title": res.Title,
	}, "")
}
