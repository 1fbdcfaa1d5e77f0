package monitoring

import (
	"math"
)

// deriveScore extrai um score 0–100 de uma categoria do resultado estilo
// Lighthouse (lighthouseResult.categories.<categoria>.score em 0–1).
// Categoria ausente ou não numérica vale nil, nunca 0: ausência de dado não é
// score zero
func deriveScore(pageSpeedResult map[string]any, category string) *int {
	if pageSpeedResult == nil {
		return nil
	}

	lighthouse, ok := pageSpeedResult["lighthouseResult"].(map[string]any)
	if !ok {
		return nil
	}

	categories, ok := lighthouse["categories"].(map[string]any)
	if !ok {
		return nil
	}

	entry, ok := categories[category].(map[string]any)
	if !ok {
		return nil
	}

	raw, ok := entry["score"].(float64)
	if !ok {
		return nil
	}

	score := int(math.Round(raw * 100))
	return &score
}
