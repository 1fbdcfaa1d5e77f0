package insighting

import (
	"fmt"
	"time"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

// Limiares de relevância: flutuações menores que isso são ruído e não geram
// insight
const (
	seoScoreThreshold     = 3
	perfScoreThreshold    = 5
	serpRankThreshold     = 1
	competitorSignalDelta = 3
)

// maxChanges limita a lista de mudanças para manter as notificações legíveis.
// ChangeCount preserva o total real antes do corte
const maxChanges = 12

// BuildInsights compara o novo estado medido com o snapshot anterior e produz
// a lista de mudanças relevantes. Função pura: sem IO, sem relógio além do
// timestamp de geração
func BuildInsights(
	previous *domain.AnalysisSnapshot,
	performanceScore, seoScore *int,
	serpData, intelligenceData map[string]any,
) domain.InsightSet {
	set := domain.InsightSet{
		Changes:     []string{},
		GeneratedAt: time.Now(),
	}

	if previous == nil {
		return set
	}

	set.ComparedTo = &previous.AnalyzedAt

	changes := []string{}

	changes = appendScoreChange(changes, "SEO", previous.SEOScore, seoScore, seoScoreThreshold)
	changes = appendScoreChange(changes, "Performance", previous.PerformanceScore, performanceScore, perfScoreThreshold)
	changes = appendSerpChange(changes, previous.SerpData, serpData)
	changes = appendCompetitorChanges(changes, previous.IntelligenceData, intelligenceData)

	set.ChangeCount = len(changes)
	if len(changes) > maxChanges {
		changes = changes[:maxChanges]
	}
	set.Changes = changes

	return set
}

func appendScoreChange(changes []string, label string, previous, current *int, threshold int) []string {
	if previous == nil || current == nil {
		return changes
	}

	delta := *current - *previous
	if abs(delta) < threshold {
		return changes
	}

	if delta > 0 {
		return append(changes, fmt.Sprintf("%s melhorou %d pontos", label, delta))
	}
	return append(changes, fmt.Sprintf("%s caiu %d pontos", label, -delta))
}

// appendSerpChange compara posições de ranking. Posição menor é melhor, então
// o sinal é invertido: cair de 10 para 4 significa subir 6 posições
func appendSerpChange(changes []string, previousData, currentData map[string]any) []string {
	previousPosition := serpPosition(previousData)
	currentPosition := serpPosition(currentData)
	if previousPosition == 0 || currentPosition == 0 {
		return changes
	}

	improvement := previousPosition - currentPosition
	if abs(improvement) < serpRankThreshold {
		return changes
	}

	if improvement > 0 {
		return append(changes, fmt.Sprintf("ranking subiu %d %s", improvement, positionWord(improvement)))
	}
	return append(changes, fmt.Sprintf("ranking caiu %d %s", -improvement, positionWord(-improvement)))
}

// appendCompetitorChanges casa concorrentes atuais com os do snapshot
// anterior pelo domínio normalizado e reporta mudanças de presença, título e
// sinais de preço/CTA
func appendCompetitorChanges(changes []string, previousData, currentData map[string]any) []string {
	current := extractCompetitors(currentData)
	if len(current) == 0 {
		return changes
	}

	previousByDomain := map[string]domain.CompetitorObservation{}
	for _, competitor := range extractCompetitors(previousData) {
		previousByDomain[competitor.Domain] = competitor
	}

	for _, competitor := range current {
		before, found := previousByDomain[competitor.Domain]
		if !found {
			changes = append(changes, fmt.Sprintf("Novo concorrente detectado: %s", competitor.Domain))
			continue
		}

		if competitor.Title != "" && before.Title != "" && competitor.Title != before.Title {
			changes = append(changes, fmt.Sprintf("Concorrente %s alterou o título da página", competitor.Domain))
		}

		if abs(competitor.PriceCount-before.PriceCount) >= competitorSignalDelta {
			changes = append(changes, fmt.Sprintf("Concorrente %s mudou os sinais de preço", competitor.Domain))
		}

		if abs(competitor.CTACount-before.CTACount) >= competitorSignalDelta {
			changes = append(changes, fmt.Sprintf("Concorrente %s provavelmente mudou o layout ou os CTAs", competitor.Domain))
		}
	}

	return changes
}

func positionWord(n int) string {
	if n == 1 {
		return "posição"
	}
	return "posições"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
