package insighting

import (
	"strconv"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

// Os dados de SERP e inteligência são blobs JSON opacos vindos das sondas.
// A extração é tolerante: qualquer campo ausente ou com tipo inesperado vale
// zero/vazio

// serpPosition extrai a posição de ranking dos dados de SERP. Zero significa
// sem dado
func serpPosition(data map[string]any) int {
	if data == nil {
		return 0
	}
	return toInt(data["position"])
}

// extractCompetitors normaliza a lista de concorrentes dos dados de
// inteligência. O domínio normalizado é a chave de casamento entre snapshots
func extractCompetitors(data map[string]any) []domain.CompetitorObservation {
	if data == nil {
		return nil
	}

	raw, ok := data["competitors"].([]any)
	if !ok {
		return nil
	}

	competitors := make([]domain.CompetitorObservation, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		competitorURL := toString(fields["url"])
		if competitorURL == "" {
			continue
		}

		competitors = append(competitors, domain.CompetitorObservation{
			URL:        competitorURL,
			Domain:     utils.NormalizeDomain(competitorURL),
			Title:      toString(fields["title"]),
			PriceCount: toInt(fields["price_count"]),
			CTACount:   toInt(fields["cta_count"]),
		})
	}

	return competitors
}

func toInt(v any) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
