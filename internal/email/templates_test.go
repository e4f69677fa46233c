package email

import (
	"strings"
	"testing"

	"campusshare/internal/config"
	"campusshare/internal/models"
)

func testTemplates() *Templates {
	return NewTemplates(&config.Config{
		SiteTitle:  "Campus Resource Share",
		SiteFooter: "Campus Resource Share",
	})
}

func TestResourceRequested(t *testing.T) {
	res := &models.Resource{
		Title:       "Calculus Notes Sem 1",
		Category:    models.CategoryNotes,
		Description: "Handwritten, complete",
	}
	requester := &models.User{Name: "Ravi Kumar", Email: "ravi@college.edu"}

	subject, htmlBody, textBody := testTemplates().ResourceRequested(res, requester)

	if !strings.Contains(subject, res.Title) {
		t.Errorf("subject = %q, want resource title", subject)
	}
	for _, body := range []string{htmlBody, textBody} {
		if !strings.Contains(body, "Ravi Kumar") {
			t.Error("body missing requester name")
		}
		if !strings.Contains(body, "ravi@college.edu") {
			t.Error("body missing requester email")
		}
		if !strings.Contains(body, res.Title) {
			t.Error("body missing resource title")
		}
	}
}

func TestResourceRequested_EscapesHTML(t *testing.T) {
	res := &models.Resource{Title: `<script>alert("x")</script>`, Category: models.CategoryOther}
	requester := &models.User{Email: "x@college.edu"}

	_, htmlBody, _ := testTemplates().ResourceRequested(res, requester)

	if strings.Contains(htmlBody, "<script>") {
		t.Error("HTML body contains unescaped script tag")
	}
}

func TestResourceRejected(t *testing.T) {
	res := &models.Resource{
		Title:      "Old lab manual",
		Category:   models.CategoryBooks,
		OwnerEmail: "owner@college.edu",
	}

	subject, htmlBody, textBody := testTemplates().ResourceRejected(res, "REJECTED - contains phone number")

	if !strings.Contains(subject, res.Title) {
		t.Errorf("subject = %q, want resource title", subject)
	}
	for _, body := range []string{htmlBody, textBody} {
		if !strings.Contains(body, "REJECTED - contains phone number") {
			t.Error("body missing the screener reason")
		}
	}
}
