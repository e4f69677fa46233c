package models

import "testing"

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{"name set", User{Name: "Priya Sharma", Email: "priya@college.edu"}, "Priya Sharma"},
		{"falls back to email local part", User{Email: "priya@college.edu"}, "priya"},
		{"email without at sign", User{Email: "priya"}, "priya"},
		{"empty user", User{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEmailLocalPart(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"standard email", "student@college.edu", "student"},
		{"plus addressing", "student+books@college.edu", "student+books"},
		{"no at sign", "student", "student"},
		{"empty", "", ""},
		{"leading at sign", "@college.edu", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmailLocalPart(tt.email); got != tt.expected {
				t.Errorf("EmailLocalPart(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}
