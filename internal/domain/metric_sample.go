package domain

import (
	"time"

	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

// CampaignMetricSample é uma amostra de métricas inserida por campanha a cada
// sincronização. Nunca é atualizada: cada sincronização insere um novo período
type CampaignMetricSample struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	UserID      string    `json:"user_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions float64   `json:"conversions"`
	Cost        float64   `json:"cost"`
	Revenue     float64   `json:"revenue"`
	CTR         float64   `json:"ctr"`
	CPC         float64   `json:"cpc"`
	CPA         float64   `json:"cpa"`
	ROAS        float64   `json:"roas"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCampaignMetricSample monta a amostra calculando as métricas derivadas de
// forma defensiva: ctr/cpc/cpa/roas valem 0 quando o denominador é zero
func NewCampaignMetricSample(campaignID, userID string, periodStart, periodEnd time.Time, m ProviderMetrics) *CampaignMetricSample {
	return &CampaignMetricSample{
		CampaignID:  campaignID,
		UserID:      userID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Conversions: m.Conversions,
		Cost:        m.Cost,
		Revenue:     m.Revenue,
		CTR:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(m.Clicks), float64(m.Impressions)) * 100),
		CPC:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(m.Cost, float64(m.Clicks))),
		CPA:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(m.Cost, m.Conversions)),
		ROAS:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(m.Revenue, m.Cost)),
		Source:      "api",
	}
}
