package domain

import "time"

// Project é um negócio (URL) cadastrado por um usuário
type Project struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	SearchTerms    []string  `json:"search_terms,omitempty"`
	CompetitorURLs []string  `json:"competitor_urls,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ApiKey é uma chave de serviço de IA cadastrada pelo usuário, usada apenas
// pela sonda de inteligência competitiva
type ApiKey struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Service string `json:"service"`
	Key     string `json:"-"`
	Active  bool   `json:"active"`
}
