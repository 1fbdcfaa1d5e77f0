package domain

import "time"

// Campaign é uma campanha local cadastrada pelo usuário na plataforma
type Campaign struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID *string   `json:"project_id,omitempty"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProviderCampaign é uma campanha normalizada retornada por um adaptador de
// provedor. Budget já está em unidades monetárias inteiras (não micros nem
// centavos)
type ProviderCampaign struct {
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Budget     float64 `json:"budget"`
}

// ProviderMetrics são as métricas normalizadas de uma campanha no provedor.
// Campos ausentes na resposta do provedor valem 0
type ProviderMetrics struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Cost        float64 `json:"cost"`
	Revenue     float64 `json:"revenue"`
}
