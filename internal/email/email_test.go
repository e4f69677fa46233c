package email

import (
	"testing"

	"campusshare/internal/config"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.Config
		wantEnabled bool
	}{
		{
			name: "enabled when all SMTP settings configured",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPHost:    "smtp.example.com",
				SMTPPort:    587,
				SMTPFrom:    "noreply@example.com",
			},
			wantEnabled: true,
		},
		{
			name: "disabled when SMTPEnabled is false",
			cfg: &config.Config{
				SMTPEnabled: false,
				SMTPHost:    "smtp.example.com",
				SMTPPort:    587,
				SMTPFrom:    "noreply@example.com",
			},
			wantEnabled: false,
		},
		{
			name: "disabled when SMTPHost is empty",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPPort:    587,
				SMTPFrom:    "noreply@example.com",
			},
			wantEnabled: false,
		},
		{
			name: "disabled when SMTPFrom is empty",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPHost:    "smtp.example.com",
				SMTPPort:    587,
			},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.cfg)
			if got := svc.IsEnabled(); got != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", got, tt.wantEnabled)
			}
		})
	}
}

func TestSendEmail_DisabledIsNoop(t *testing.T) {
	svc := NewService(&config.Config{})
	if err := svc.SendEmail([]string{"a@college.edu"}, "subject", "", "body"); err != nil {
		t.Errorf("SendEmail() on disabled service = %v, want nil", err)
	}
}

func TestSendEmail_NoRecipients(t *testing.T) {
	svc := NewService(&config.Config{
		SMTPEnabled: true,
		SMTPHost:    "smtp.example.com",
		SMTPFrom:    "noreply@example.com",
	})
	if err := svc.SendEmail(nil, "subject", "", "body"); err != nil {
		t.Errorf("SendEmail() with no recipients = %v, want nil", err)
	}
}
