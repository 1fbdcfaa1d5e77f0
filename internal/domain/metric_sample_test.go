package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCampaignMetricSample(t *testing.T) {
	periodStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		metrics  ProviderMetrics
		validate func(t *testing.T, sample *CampaignMetricSample)
	}{
		{
			name: "Deve calcular as métricas derivadas",
			metrics: ProviderMetrics{
				Impressions: 1000,
				Clicks:      50,
				Conversions: 10,
				Cost:        200,
				Revenue:     800,
			},
			validate: func(t *testing.T, sample *CampaignMetricSample) {
				assert.Equal(t, 5.0, sample.CTR)   // 50/1000 * 100
				assert.Equal(t, 4.0, sample.CPC)   // 200/50
				assert.Equal(t, 20.0, sample.CPA)  // 200/10
				assert.Equal(t, 4.0, sample.ROAS)  // 800/200
				assert.Equal(t, "api", sample.Source)
			},
		},
		{
			name:    "Denominadores zero devem gerar derivadas zero, nunca NaN",
			metrics: ProviderMetrics{Impressions: 0, Clicks: 0, Conversions: 0, Cost: 0, Revenue: 0},
			validate: func(t *testing.T, sample *CampaignMetricSample) {
				assert.Equal(t, 0.0, sample.CTR)
				assert.Equal(t, 0.0, sample.CPC)
				assert.Equal(t, 0.0, sample.CPA)
				assert.Equal(t, 0.0, sample.ROAS)
			},
		},
		{
			name:    "Custo sem conversões deve zerar apenas o CPA",
			metrics: ProviderMetrics{Impressions: 100, Clicks: 10, Conversions: 0, Cost: 50, Revenue: 0},
			validate: func(t *testing.T, sample *CampaignMetricSample) {
				assert.Equal(t, 10.0, sample.CTR)
				assert.Equal(t, 5.0, sample.CPC)
				assert.Equal(t, 0.0, sample.CPA)
				assert.Equal(t, 0.0, sample.ROAS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := NewCampaignMetricSample("camp-1", "user-1", periodStart, periodEnd, tt.metrics)

			assert.Equal(t, "camp-1", sample.CampaignID)
			assert.Equal(t, "user-1", sample.UserID)
			assert.Equal(t, periodStart, sample.PeriodStart)
			assert.Equal(t, periodEnd, sample.PeriodEnd)
			tt.validate(t, sample)
		})
	}
}

func TestSyncSummaryFinalStatus(t *testing.T) {
	tests := []struct {
		name     string
		summary  SyncSummary
		expected SyncStatus
	}{
		{
			name:     "Sem falhas deve ser completed",
			summary:  SyncSummary{RecordsFetched: 3, RecordsCreated: 3},
			expected: SyncStatusCompleted,
		},
		{
			name:     "Nada buscado e nada falhado também é completed",
			summary:  SyncSummary{},
			expected: SyncStatusCompleted,
		},
		{
			name:     "Falhas com algo criado deve ser partial",
			summary:  SyncSummary{RecordsFetched: 3, RecordsCreated: 2, RecordsFailed: 1},
			expected: SyncStatusPartial,
		},
		{
			name:     "Falhas sem nada criado deve ser failed",
			summary:  SyncSummary{RecordsFetched: 2, RecordsFailed: 2},
			expected: SyncStatusFailed,
		},
		{
			name:     "Falhas com apenas atualizações deve ser failed",
			summary:  SyncSummary{RecordsFetched: 2, RecordsUpdated: 1, RecordsFailed: 1},
			expected: SyncStatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.summary.FinalStatus())
		})
	}
}

func TestIntegrationTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		integration Integration
		expected    bool
	}{
		{
			name:        "Sem validade conhecida nunca expira",
			integration: Integration{TokenExpiresAt: nil},
			expected:    false,
		},
		{
			name:        "Validade no passado expira",
			integration: Integration{TokenExpiresAt: &past},
			expected:    true,
		},
		{
			name:        "Validade no futuro não expira",
			integration: Integration{TokenExpiresAt: &future},
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.integration.TokenExpired(now))
		})
	}
}
