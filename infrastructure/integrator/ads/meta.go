package ads

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

// centsPerUnit converte orçamentos em centavos (Meta/LinkedIn) para unidades
const centsPerUnit = 100

func newMetaAdsAdapter(baseURL string) *Adapter {
	return &Adapter{
		Provider: domain.ProviderMetaAds,
		CampaignsURL: func(accountID string) string {
			params := url.Values{}
			params.Set("fields", "id,name,status,daily_budget")
			params.Set("limit", "100")
			return fmt.Sprintf("%s/act_%s/campaigns?%s", baseURL, accountID, params.Encode())
		},
		MetricsURL: func(accountID, campaignID, periodStart, periodEnd string) string {
			params := url.Values{}
			params.Set("fields", "impressions,clicks,spend,actions,action_values")
			params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, periodStart, periodEnd))
			return fmt.Sprintf("%s/%s/insights?%s", baseURL, campaignID, params.Encode())
		},
		Headers:        bearerHeaders,
		ParseCampaigns: parseMetaCampaigns,
		ParseMetrics:   parseMetaMetrics,

		RefreshTokenURL: "https://graph.facebook.com/v18.0/oauth/access_token",
		RefreshTokenBody: func(refreshToken, clientID, clientSecret string) url.Values {
			body := url.Values{}
			body.Set("grant_type", "fb_exchange_token")
			body.Set("client_id", clientID)
			body.Set("client_secret", clientSecret)
			body.Set("fb_exchange_token", refreshToken)
			return body
		},
	}
}

func parseMetaCampaigns(body []byte) []domain.ProviderCampaign {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return []domain.ProviderCampaign{}
	}

	data := asSlice(response["data"])
	campaigns := make([]domain.ProviderCampaign, 0, len(data))

	for _, raw := range data {
		entry := asMap(raw)
		if entry == nil {
			continue
		}

		campaigns = append(campaigns, domain.ProviderCampaign{
			ExternalID: asString(entry["id"]),
			Name:       asString(entry["name"]),
			Status:     asString(entry["status"]),
			Budget:     asFloat(entry["daily_budget"]) / centsPerUnit,
		})
	}

	return campaigns
}

func parseMetaMetrics(body []byte) domain.ProviderMetrics {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.ProviderMetrics{}
	}

	data := asSlice(response["data"])
	if len(data) == 0 {
		return domain.ProviderMetrics{}
	}

	entry := asMap(data[0])
	if entry == nil {
		return domain.ProviderMetrics{}
	}

	return domain.ProviderMetrics{
		Impressions: asInt(entry["impressions"]),
		Clicks:      asInt(entry["clicks"]),
		Conversions: sumMetaActions(asSlice(entry["actions"])),
		Cost:        asFloat(entry["spend"]),
		Revenue:     sumMetaActions(asSlice(entry["action_values"])),
	}
}

// sumMetaActions soma os valores das ações de conversão (purchase e leads)
func sumMetaActions(actions []any) float64 {
	var total float64
	for _, raw := range actions {
		action := asMap(raw)
		actionType := asString(action["action_type"])
		if strings.Contains(actionType, "purchase") || actionType == "lead" {
			total += asFloat(action["value"])
		}
	}
	return total
}
