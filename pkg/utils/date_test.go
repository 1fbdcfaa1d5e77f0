package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Data válida no formato YYYY-MM-DD",
			input:    "2026-07-01",
			expected: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "String vazia retorna data zero sem erro",
			input:    "",
			expected: time.Time{},
		},
		{
			name:     "Formato inválido retorna erro",
			input:    "01/07/2026",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, date)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *date)
		})
	}
}
