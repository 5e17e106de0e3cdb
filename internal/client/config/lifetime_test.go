package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLifetime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "10m", 10 * time.Minute, false},
		{"hours", "1h", time.Hour, false},
		{"days", "1d", 24 * time.Hour, false},
		{"multiple days", "7d", 7 * 24 * time.Hour, false},
		{"empty", "", 0, true},
		{"zero value", "0m", 0, true},
		{"no unit", "10", 0, true},
		{"unknown unit", "10w", 0, true},
		{"negative", "-5m", 0, true},
		{"garbage", "abc", 0, true},
		{"unit before value", "m10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLifetime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
