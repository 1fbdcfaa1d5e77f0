package domain

import "time"

// IntegrationProvider identifica a plataforma de anúncios conectada
type IntegrationProvider string

const (
	ProviderGoogleAds   IntegrationProvider = "google_ads"
	ProviderMetaAds     IntegrationProvider = "meta_ads"
	ProviderLinkedInAds IntegrationProvider = "linkedin_ads"
	ProviderTikTokAds   IntegrationProvider = "tiktok_ads"
)

// IntegrationStatus representa o estado de saúde de uma integração
type IntegrationStatus string

const (
	IntegrationStatusConnected IntegrationStatus = "connected"
	IntegrationStatusExpired   IntegrationStatus = "expired"
	IntegrationStatusError     IntegrationStatus = "error"
)

// Integration é uma conexão OAuth entre um usuário e uma conta de anúncios.
// Status vai para expired somente quando uma renovação de token falha e para
// error somente após 5 sincronizações consecutivas com falha
type Integration struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Provider       IntegrationProvider `json:"provider"`
	AccountID      string              `json:"account_id"`
	AccessToken    string              `json:"-"`
	RefreshToken   *string             `json:"-"`
	TokenExpiresAt *time.Time          `json:"token_expires_at,omitempty"`
	Status         IntegrationStatus   `json:"status"`
	ErrorMessage   *string             `json:"error_message,omitempty"`
	ErrorCount     int                 `json:"error_count"`
	LastSyncAt     *time.Time          `json:"last_sync_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TokenExpired indica se o token de acesso já passou da validade conhecida
func (i *Integration) TokenExpired(now time.Time) bool {
	return i.TokenExpiresAt != nil && i.TokenExpiresAt.Before(now)
}
