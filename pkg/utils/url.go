package utils

import (
	"net/url"
	"strings"
)

// NormalizeURL garante que a URL tenha um esquema, prefixando https://
// quando ausente
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "https://" + trimmed
	}

	return trimmed
}

// NormalizeDomain extrai o hostname da URL sem esquema e sem o prefixo www.
// Usado para casar concorrentes entre snapshots
func NormalizeDomain(raw string) string {
	normalized := NormalizeURL(raw)
	if normalized == "" {
		return ""
	}

	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Hostname() == "" {
		// URL irrecuperável: remove esquema e caminho manualmente
		stripped := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
		if idx := strings.IndexAny(stripped, "/?#"); idx >= 0 {
			stripped = stripped[:idx]
		}
		return strings.ToLower(strings.TrimPrefix(stripped, "www."))
	}

	return strings.ToLower(strings.TrimPrefix(parsed.Hostname(), "www."))
}
