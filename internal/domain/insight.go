package domain

import "time"

// InsightSet é o resultado do comparador de snapshots: uma lista limitada de
// mudanças legíveis por humanos. ChangeCount guarda o total real antes do
// corte da lista
type InsightSet struct {
	Changes     []string   `json:"changes"`
	ChangeCount int        `json:"change_count"`
	ComparedTo  *time.Time `json:"compared_to,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// CompetitorObservation é a visão normalizada de um concorrente extraída dos
// dados de inteligência de um snapshot
type CompetitorObservation struct {
	URL        string
	Domain     string
	Title      string
	PriceCount int
	CTACount   int
}
