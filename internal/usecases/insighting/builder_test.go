package insighting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildInsights_SemSnapshotAnterior(t *testing.T) {
	set := BuildInsights(nil, intPtr(90), intPtr(85), nil, nil)

	assert.Empty(t, set.Changes)
	assert.Equal(t, 0, set.ChangeCount)
	assert.Nil(t, set.ComparedTo)
	assert.False(t, set.GeneratedAt.IsZero())
}

func TestBuildInsights_MudancasDeScore(t *testing.T) {
	analyzedAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		previous    *domain.AnalysisSnapshot
		performance *int
		seo         *int
		expected    []string
	}{
		{
			name: "Queda de SEO abaixo do limiar deve ser suprimida",
			previous: &domain.AnalysisSnapshot{
				SEOScore:   intPtr(80),
				AnalyzedAt: analyzedAt,
			},
			seo:      intPtr(78),
			expected: []string{},
		},
		{
			name: "Queda de SEO no limiar deve ser reportada",
			previous: &domain.AnalysisSnapshot{
				SEOScore:   intPtr(80),
				AnalyzedAt: analyzedAt,
			},
			seo:      intPtr(77),
			expected: []string{"SEO caiu 3 pontos"},
		},
		{
			name: "Melhora de performance acima do limiar deve ser reportada",
			previous: &domain.AnalysisSnapshot{
				PerformanceScore: intPtr(60),
				AnalyzedAt:       analyzedAt,
			},
			performance: intPtr(70),
			expected:    []string{"Performance melhorou 10 pontos"},
		},
		{
			name: "Variação de performance de 4 pontos é ruído",
			previous: &domain.AnalysisSnapshot{
				PerformanceScore: intPtr(60),
				AnalyzedAt:       analyzedAt,
			},
			performance: intPtr(64),
			expected:    []string{},
		},
		{
			name: "Score ausente em qualquer lado não gera insight",
			previous: &domain.AnalysisSnapshot{
				SEOScore:   nil,
				AnalyzedAt: analyzedAt,
			},
			seo:      intPtr(50),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := BuildInsights(tt.previous, tt.performance, tt.seo, nil, nil)

			assert.Equal(t, tt.expected, set.Changes)
			assert.Equal(t, len(tt.expected), set.ChangeCount)
			assert.Equal(t, &tt.previous.AnalyzedAt, set.ComparedTo)
		})
	}
}

func TestBuildInsights_MudancaDeRanking(t *testing.T) {
	previous := &domain.AnalysisSnapshot{
		SerpData:   map[string]any{"position": float64(10)},
		AnalyzedAt: time.Now(),
	}

	tests := []struct {
		name     string
		serpData map[string]any
		expected []string
	}{
		{
			// Posição menor é melhor: 10 → 4 é uma subida de 6 posições
			name:     "Melhora de posição deve inverter o sinal",
			serpData: map[string]any{"position": float64(4)},
			expected: []string{"ranking subiu 6 posições"},
		},
		{
			name:     "Piora de uma posição usa o singular",
			serpData: map[string]any{"position": float64(11)},
			expected: []string{"ranking caiu 1 posição"},
		},
		{
			name:     "Posição igual não gera insight",
			serpData: map[string]any{"position": float64(10)},
			expected: []string{},
		},
		{
			name:     "Posição zero significa sem dado e não gera insight",
			serpData: map[string]any{"position": float64(0)},
			expected: []string{},
		},
		{
			name:     "Dados de SERP ausentes não geram insight",
			serpData: nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := BuildInsights(previous, nil, nil, tt.serpData, nil)
			assert.Equal(t, tt.expected, set.Changes)
		})
	}
}

func TestBuildInsights_MudancasDeConcorrentes(t *testing.T) {
	previous := &domain.AnalysisSnapshot{
		IntelligenceData: map[string]any{
			"competitors": []any{
				map[string]any{"url": "https://www.loja-a.com.br", "title": "Loja A - Ofertas", "price_count": float64(4), "cta_count": float64(2)},
				map[string]any{"url": "https://loja-b.com.br", "title": "Loja B", "price_count": float64(1), "cta_count": float64(1)},
			},
		},
		AnalyzedAt: time.Now(),
	}

	tests := []struct {
		name        string
		competitors []any
		expected    []string
	}{
		{
			name: "Concorrente inédito deve ser reportado",
			competitors: []any{
				map[string]any{"url": "https://loja-c.com.br", "title": "Loja C"},
			},
			expected: []string{"Novo concorrente detectado: loja-c.com.br"},
		},
		{
			// O casamento ignora www. e esquema: é o mesmo domínio do snapshot
			name: "Título alterado deve ser reportado",
			competitors: []any{
				map[string]any{"url": "https://loja-a.com.br", "title": "Loja A - Liquidação", "price_count": float64(4), "cta_count": float64(2)},
			},
			expected: []string{"Concorrente loja-a.com.br alterou o título da página"},
		},
		{
			name: "Variação de preços abaixo do delta é ruído",
			competitors: []any{
				map[string]any{"url": "https://www.loja-a.com.br", "title": "Loja A - Ofertas", "price_count": float64(6), "cta_count": float64(2)},
			},
			expected: []string{},
		},
		{
			name: "Variação de preços no delta deve ser reportada",
			competitors: []any{
				map[string]any{"url": "https://www.loja-a.com.br", "title": "Loja A - Ofertas", "price_count": float64(7), "cta_count": float64(2)},
			},
			expected: []string{"Concorrente loja-a.com.br mudou os sinais de preço"},
		},
		{
			name: "Variação de CTAs no delta sugere mudança de layout",
			competitors: []any{
				map[string]any{"url": "https://loja-b.com.br", "title": "Loja B", "price_count": float64(1), "cta_count": float64(5)},
			},
			expected: []string{"Concorrente loja-b.com.br provavelmente mudou o layout ou os CTAs"},
		},
		{
			name:        "Sem concorrentes atuais nada é reportado",
			competitors: []any{},
			expected:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := BuildInsights(previous, nil, nil, nil, map[string]any{"competitors": tt.competitors})
			assert.Equal(t, tt.expected, set.Changes)
		})
	}
}

func TestBuildInsights_CorteDaLista(t *testing.T) {
	// 15 concorrentes novos geram 15 mudanças; a lista é cortada em 12 mas o
	// contador preserva o total real
	competitors := make([]any, 0, 15)
	for i := 0; i < 15; i++ {
		competitors = append(competitors, map[string]any{
			"url": fmt.Sprintf("https://concorrente-%02d.com.br", i),
		})
	}

	previous := &domain.AnalysisSnapshot{
		IntelligenceData: map[string]any{"competitors": []any{}},
		AnalyzedAt:       time.Now(),
	}

	set := BuildInsights(previous, nil, nil, nil, map[string]any{"competitors": competitors})

	assert.Len(t, set.Changes, 12)
	assert.Equal(t, 15, set.ChangeCount)
}

func TestExtractCompetitors(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected int
	}{
		{
			name: "Entradas sem URL são descartadas",
			data: map[string]any{
				"competitors": []any{
					map[string]any{"url": "https://ok.com.br"},
					map[string]any{"title": "sem url"},
					"tipo errado",
				},
			},
			expected: 1,
		},
		{
			name:     "Campo competitors com tipo errado retorna vazio",
			data:     map[string]any{"competitors": "nada"},
			expected: 0,
		},
		{
			name:     "Dados nulos retornam vazio",
			data:     nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, extractCompetitors(tt.data), tt.expected)
		})
	}
}

func intPtr(n int) *int {
	return &n
}
