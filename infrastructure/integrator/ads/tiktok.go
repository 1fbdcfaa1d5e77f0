package ads

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

func newTikTokAdsAdapter(baseURL string) *Adapter {
	return &Adapter{
		Provider: domain.ProviderTikTokAds,
		CampaignsURL: func(accountID string) string {
			params := url.Values{}
			params.Set("advertiser_id", accountID)
			params.Set("page_size", "100")
			return fmt.Sprintf("%s/campaign/get/?%s", baseURL, params.Encode())
		},
		MetricsURL: func(accountID, campaignID, periodStart, periodEnd string) string {
			params := url.Values{}
			params.Set("advertiser_id", accountID)
			params.Set("report_type", "BASIC")
			params.Set("data_level", "AUCTION_CAMPAIGN")
			params.Set("dimensions", `["campaign_id"]`)
			params.Set("metrics", `["impressions","clicks","conversion","spend","total_onsite_shopping_value"]`)
			params.Set("filters", fmt.Sprintf(`[{"field_name":"campaign_ids","filter_type":"IN","filter_value":"[\"%s\"]"}]`, campaignID))
			params.Set("start_date", periodStart)
			params.Set("end_date", periodEnd)
			return fmt.Sprintf("%s/report/integrated/get/?%s", baseURL, params.Encode())
		},
		// O TikTok usa o cabeçalho Access-Token em vez de Authorization
		Headers: func(accessToken string) map[string]string {
			return map[string]string{
				"Access-Token": accessToken,
				"Content-Type": "application/json",
			}
		},
		ParseCampaigns: parseTikTokCampaigns,
		ParseMetrics:   parseTikTokMetrics,

		// A renovação OAuth do TikTok não é suportada; o token de longa
		// duração é reconectado manualmente pelo fluxo de conexão
		RefreshTokenURL: "",
	}
}

func parseTikTokCampaigns(body []byte) []domain.ProviderCampaign {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return []domain.ProviderCampaign{}
	}

	list := asSlice(asMap(response["data"])["list"])
	campaigns := make([]domain.ProviderCampaign, 0, len(list))

	for _, raw := range list {
		entry := asMap(raw)
		if entry == nil {
			continue
		}

		campaigns = append(campaigns, domain.ProviderCampaign{
			ExternalID: asString(entry["campaign_id"]),
			Name:       asString(entry["campaign_name"]),
			Status:     asString(entry["operation_status"]),
			Budget:     asFloat(entry["budget"]),
		})
	}

	return campaigns
}

func parseTikTokMetrics(body []byte) domain.ProviderMetrics {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.ProviderMetrics{}
	}

	list := asSlice(asMap(response["data"])["list"])
	if len(list) == 0 {
		return domain.ProviderMetrics{}
	}

	metrics := asMap(asMap(list[0])["metrics"])
	if metrics == nil {
		return domain.ProviderMetrics{}
	}

	return domain.ProviderMetrics{
		Impressions: asInt(metrics["impressions"]),
		Clicks:      asInt(metrics["clicks"]),
		Conversions: asFloat(metrics["conversion"]),
		Cost:        asFloat(metrics["spend"]),
		Revenue:     asFloat(metrics["total_onsite_shopping_value"]),
	}
}
