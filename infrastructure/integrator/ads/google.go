package ads

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

const googleOAuthTokenURL = "https://oauth2.googleapis.com/token"

// microsPerUnit converte valores em micro-moeda do Google Ads para unidades
const microsPerUnit = 1_000_000

func newGoogleAdsAdapter(baseURL string) *Adapter {
	return &Adapter{
		Provider: domain.ProviderGoogleAds,
		CampaignsURL: func(accountID string) string {
			query := "SELECT campaign.id, campaign.name, campaign.status, campaign_budget.amount_micros FROM campaign WHERE campaign.status != 'REMOVED'"
			return fmt.Sprintf("%s/customers/%s/googleAds:search?query=%s", baseURL, accountID, url.QueryEscape(query))
		},
		MetricsURL: func(accountID, campaignID, periodStart, periodEnd string) string {
			query := fmt.Sprintf(
				"SELECT metrics.impressions, metrics.clicks, metrics.conversions, metrics.cost_micros, metrics.conversions_value FROM campaign WHERE campaign.id = %s AND segments.date BETWEEN '%s' AND '%s'",
				campaignID, periodStart, periodEnd,
			)
			return fmt.Sprintf("%s/customers/%s/googleAds:search?query=%s", baseURL, accountID, url.QueryEscape(query))
		},
		Headers:        bearerHeaders,
		ParseCampaigns: parseGoogleCampaigns,
		ParseMetrics:   parseGoogleMetrics,

		RefreshTokenURL: googleOAuthTokenURL,
		RefreshTokenBody: func(refreshToken, clientID, clientSecret string) url.Values {
			body := url.Values{}
			body.Set("grant_type", "refresh_token")
			body.Set("refresh_token", refreshToken)
			body.Set("client_id", clientID)
			body.Set("client_secret", clientSecret)
			return body
		},
	}
}

func parseGoogleCampaigns(body []byte) []domain.ProviderCampaign {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return []domain.ProviderCampaign{}
	}

	results := asSlice(response["results"])
	campaigns := make([]domain.ProviderCampaign, 0, len(results))

	for _, raw := range results {
		result := asMap(raw)
		campaign := asMap(result["campaign"])
		if campaign == nil {
			continue
		}

		budget := asMap(result["campaignBudget"])

		campaigns = append(campaigns, domain.ProviderCampaign{
			ExternalID: asString(campaign["id"]),
			Name:       asString(campaign["name"]),
			Status:     asString(campaign["status"]),
			Budget:     asFloat(budget["amountMicros"]) / microsPerUnit,
		})
	}

	return campaigns
}

func parseGoogleMetrics(body []byte) domain.ProviderMetrics {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.ProviderMetrics{}
	}

	results := asSlice(response["results"])

	// O Google segmenta por data; soma todas as linhas do período
	var metrics domain.ProviderMetrics
	for _, raw := range results {
		row := asMap(asMap(raw)["metrics"])
		if row == nil {
			continue
		}

		metrics.Impressions += asInt(row["impressions"])
		metrics.Clicks += asInt(row["clicks"])
		metrics.Conversions += asFloat(row["conversions"])
		metrics.Cost += asFloat(row["costMicros"]) / microsPerUnit
		metrics.Revenue += asFloat(row["conversionsValue"])
	}

	return metrics
}
