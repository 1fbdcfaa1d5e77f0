package ads

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

func newLinkedInAdsAdapter(baseURL string) *Adapter {
	return &Adapter{
		Provider: domain.ProviderLinkedInAds,
		CampaignsURL: func(accountID string) string {
			return fmt.Sprintf("%s/adAccounts/%s/adCampaigns?q=search&search=(status:(values:List(ACTIVE,PAUSED)))", baseURL, accountID)
		},
		MetricsURL: func(accountID, campaignID, periodStart, periodEnd string) string {
			params := url.Values{}
			params.Set("q", "analytics")
			params.Set("pivot", "CAMPAIGN")
			params.Set("campaigns", "urn:li:sponsoredCampaign:"+campaignID)
			params.Set("dateRange", fmt.Sprintf("(start:%s,end:%s)", periodStart, periodEnd))
			params.Set("fields", "impressions,clicks,costInLocalCurrency,externalWebsiteConversions,conversionValueInLocalCurrency")
			return fmt.Sprintf("%s/adAnalytics?%s", baseURL, params.Encode())
		},
		Headers: func(accessToken string) map[string]string {
			headers := bearerHeaders(accessToken)
			headers["LinkedIn-Version"] = "202401"
			headers["X-Restli-Protocol-Version"] = "2.0.0"
			return headers
		},
		ParseCampaigns: parseLinkedInCampaigns,
		ParseMetrics:   parseLinkedInMetrics,

		RefreshTokenURL: "https://www.linkedin.com/oauth/v2/accessToken",
		RefreshTokenBody: func(refreshToken, clientID, clientSecret string) url.Values {
			body := url.Values{}
			body.Set("grant_type", "refresh_token")
			body.Set("refresh_token", refreshToken)
			body.Set("client_id", clientID)
			body.Set("client_secret", clientSecret)
			return body
		},
		// O LinkedIn devolve um novo refresh token a cada renovação
		RotatesRefreshToken: true,
	}
}

func parseLinkedInCampaigns(body []byte) []domain.ProviderCampaign {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return []domain.ProviderCampaign{}
	}

	elements := asSlice(response["elements"])
	campaigns := make([]domain.ProviderCampaign, 0, len(elements))

	for _, raw := range elements {
		entry := asMap(raw)
		if entry == nil {
			continue
		}

		// IDs de campanha do LinkedIn são numéricos
		id := asString(entry["id"])
		if id == "" {
			if numeric := asFloat(entry["id"]); numeric != 0 {
				id = strconv.FormatInt(int64(numeric), 10)
			}
		}

		budget := asMap(entry["dailyBudget"])

		campaigns = append(campaigns, domain.ProviderCampaign{
			ExternalID: id,
			Name:       asString(entry["name"]),
			Status:     asString(entry["status"]),
			Budget:     asFloat(budget["amount"]) / centsPerUnit,
		})
	}

	return campaigns
}

func parseLinkedInMetrics(body []byte) domain.ProviderMetrics {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.ProviderMetrics{}
	}

	elements := asSlice(response["elements"])
	if len(elements) == 0 {
		return domain.ProviderMetrics{}
	}

	entry := asMap(elements[0])
	if entry == nil {
		return domain.ProviderMetrics{}
	}

	return domain.ProviderMetrics{
		Impressions: asInt(entry["impressions"]),
		Clicks:      asInt(entry["clicks"]),
		Conversions: asFloat(entry["externalWebsiteConversions"]),
		Cost:        asFloat(entry["costInLocalCurrency"]),
		Revenue:     asFloat(entry["conversionValueInLocalCurrency"]),
	}
}
