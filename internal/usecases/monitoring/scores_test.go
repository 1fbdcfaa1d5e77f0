package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveScore(t *testing.T) {
	tests := []struct {
		name     string
		result   map[string]any
		category string
		expected *int
	}{
		{
			name: "Score fracionário é convertido para a escala 0 a 100",
			result: map[string]any{
				"lighthouseResult": map[string]any{
					"categories": map[string]any{
						"performance": map[string]any{"score": 0.675},
					},
				},
			},
			category: "performance",
			expected: intPtr(68),
		},
		{
			name: "Categoria ausente retorna nulo, não zero",
			result: map[string]any{
				"lighthouseResult": map[string]any{
					"categories": map[string]any{},
				},
			},
			category: "seo",
			expected: nil,
		},
		{
			name: "Score com tipo inesperado retorna nulo",
			result: map[string]any{
				"lighthouseResult": map[string]any{
					"categories": map[string]any{
						"seo": map[string]any{"score": "alto"},
					},
				},
			},
			category: "seo",
			expected: nil,
		},
		{
			name:     "Resultado nulo retorna nulo",
			result:   nil,
			category: "performance",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := deriveScore(tt.result, tt.category)
			if tt.expected == nil {
				assert.Nil(t, score)
				return
			}
			assert.NotNil(t, score)
			assert.Equal(t, *tt.expected, *score)
		})
	}
}

func intPtr(n int) *int {
	return &n
}
