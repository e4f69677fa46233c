package email

import (
	"fmt"
	"html"
	"strings"

	"campusshare/internal/config"
	"campusshare/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
%s
    </div>
    <div class="footer">%s</div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content, html.EscapeString(t.cfg.SiteFooter))
}

// resourceInfoBox renders the standard resource summary block.
func (t *Templates) resourceInfoBox(res *models.Resource) string {
	return fmt.Sprintf(`<div class="info-box">
    <p><span class="label">Title:</span> %s</p>
    <p><span class="label">Category:</span> %s</p>
    <p><span class="label">Description:</span> %s</p>
</div>`, html.EscapeString(res.Title), html.EscapeString(res.Category), html.EscapeString(res.Description))
}

// ResourceRequested builds the notification sent to a resource's owner when
// another user requests it.
func (t *Templates) ResourceRequested(res *models.Resource, requester *models.User) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Someone requested your resource: %s", res.Title)

	content := fmt.Sprintf(`<p>%s has requested the resource you posted.</p>
%s
<p>Reach out to them at <a href="mailto:%s">%s</a> to arrange the handover.</p>`,
		html.EscapeString(requester.DisplayName()),
		t.resourceInfoBox(res),
		html.EscapeString(requester.Email),
		html.EscapeString(requester.Email))
	htmlBody = t.baseHTML("Resource Requested", content)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s has requested your resource.\n\n", requester.DisplayName()))
	sb.WriteString(fmt.Sprintf("Title: %s\nCategory: %s\n\n", res.Title, res.Category))
	sb.WriteString(fmt.Sprintf("Contact them at %s to arrange the handover.\n", requester.Email))
	textBody = sb.String()

	return subject, htmlBody, textBody
}

// ResourceRejected builds the notification sent to a submitter when the
// safety screen rejects their posting.
func (t *Templates) ResourceRejected(res *models.Resource, reason string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Your resource was flagged: %s", res.Title)

	content := fmt.Sprintf(`<p>The safety screen flagged your recent posting.</p>
%s
<p><span class="label">Reason:</span> %s</p>
<p>The posting is still listed; please edit or remove it if the concern applies.</p>`,
		t.resourceInfoBox(res),
		html.EscapeString(reason))
	htmlBody = t.baseHTML("Resource Flagged", content)

	var sb strings.Builder
	sb.WriteString("The safety screen flagged your recent posting.\n\n")
	sb.WriteString(fmt.Sprintf("Title: %s\nCategory: %s\n\n", res.Title, res.Category))
	sb.WriteString(fmt.Sprintf("Reason: %s\n", reason))
	textBody = sb.String()

	return subject, htmlBody, textBody
}
