package domain

import "time"

// AnalysisSnapshot é uma medição imutável da postura de SEO/performance/
// competitividade de um projeto em um instante. Scores são inteiros 0–100 ou
// nulos, nunca fracionários
type AnalysisSnapshot struct {
	ID                 string             `json:"id"`
	ProjectID          string             `json:"project_id"`
	UserID             string             `json:"user_id"`
	Strategy           MonitoringStrategy `json:"strategy"`
	PerformanceScore   *int               `json:"performance_score,omitempty"`
	SEOScore           *int               `json:"seo_score,omitempty"`
	AccessibilityScore *int               `json:"accessibility_score,omitempty"`
	BestPracticesScore *int               `json:"best_practices_score,omitempty"`
	PageSpeedResult    map[string]any     `json:"pagespeed_result,omitempty"`
	SerpData           map[string]any     `json:"serp_data,omitempty"`
	IntelligenceData   map[string]any     `json:"intelligence_data,omitempty"`
	AnalyzedURL        string             `json:"analyzed_url"`
	AnalyzedAt         time.Time          `json:"analyzed_at"`
}
