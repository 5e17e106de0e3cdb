package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "alex", false},
		{"valid with underscore", "alex_petrov", false},
		{"valid with digits", "player123", false},
		{"valid minimum length", "abc", false},
		{"valid maximum length", strings.Repeat("a", 32), false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 33), true},
		{"with space", "alex petrov", true},
		{"with dash", "alex-petrov", true},
		{"with cyrillic", "алекс", true},
		{"with special chars", "alex@home", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "user@example.com", false},
		{"valid with subdomain", "user@mail.example.com", false},
		{"valid with plus", "user+tag@example.com", false},
		{"empty", "", true},
		{"no at sign", "userexample.com", true},
		{"no domain dot", "user@example", true},
		{"with space", "user name@example.com", true},
		{"double at", "user@@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "password123", false},
		{"valid exactly minimum", "12345678", false},
		{"empty", "", true},
		{"too short", "1234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSkillLevel(t *testing.T) {
	// Все допустимые уровни проходят
	for _, level := range SkillLevels {
		assert.NoError(t, ValidateSkillLevel(level))
	}

	// Всё остальное отклоняется, включая другой регистр
	assert.Error(t, ValidateSkillLevel(""))
	assert.Error(t, ValidateSkillLevel("beginner"))
	assert.Error(t, ValidateSkillLevel("Pro"))
	assert.Error(t, ValidateSkillLevel("ADVANCED"))
}
