package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

const analysisSnapshotsTable = "analysis_snapshots"

const analysisSnapshotColumns = "id, project_id, user_id, strategy, performance_score, seo_score, accessibility_score, best_practices_score, pagespeed_result, serp_data, intelligence_data, analyzed_url, analyzed_at"

type AnalysisSnapshotRepository interface {
	Insert(snapshot *domain.AnalysisSnapshot) error
	GetLatest(projectID, userID string) (*domain.AnalysisSnapshot, error)
}

type analysisSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalysisSnapshotRepository(conn *postgres.Connection) AnalysisSnapshotRepository {
	return &analysisSnapshotRepository{
		conn: conn,
	}
}

// Insert grava um snapshot imutável
func (r *analysisSnapshotRepository) Insert(snapshot *domain.AnalysisSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	pageSpeedJSON, err := marshalNullable(snapshot.PageSpeedResult)
	if err != nil {
		return fmt.Errorf("erro ao serializar pagespeed_result: %w", err)
	}
	serpJSON, err := marshalNullable(snapshot.SerpData)
	if err != nil {
		return fmt.Errorf("erro ao serializar serp_data: %w", err)
	}
	intelligenceJSON, err := marshalNullable(snapshot.IntelligenceData)
	if err != nil {
		return fmt.Errorf("erro ao serializar intelligence_data: %w", err)
	}

	query, args, err := squirrel.
		Insert(analysisSnapshotsTable).
		Columns(
			"id", "project_id", "user_id", "strategy",
			"performance_score", "seo_score", "accessibility_score", "best_practices_score",
			"pagespeed_result", "serp_data", "intelligence_data",
			"analyzed_url", "analyzed_at",
		).
		Values(
			snapshot.ID,
			snapshot.ProjectID,
			snapshot.UserID,
			snapshot.Strategy,
			snapshot.PerformanceScore,
			snapshot.SEOScore,
			snapshot.AccessibilityScore,
			snapshot.BestPracticesScore,
			pageSpeedJSON,
			serpJSON,
			intelligenceJSON,
			snapshot.AnalyzedURL,
			snapshot.AnalyzedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetLatest retorna o snapshot mais recente do projeto para o usuário, ou nil
// quando ainda não há histórico
func (r *analysisSnapshotRepository) GetLatest(projectID, userID string) (*domain.AnalysisSnapshot, error) {
	query, args, err := squirrel.
		Select(analysisSnapshotColumns).
		From(analysisSnapshotsTable).
		Where(squirrel.Eq{"project_id": projectID, "user_id": userID}).
		OrderBy("analyzed_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.AnalysisSnapshot{}
	var pageSpeedJSON, serpJSON, intelligenceJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.ProjectID,
		&snapshot.UserID,
		&snapshot.Strategy,
		&snapshot.PerformanceScore,
		&snapshot.SEOScore,
		&snapshot.AccessibilityScore,
		&snapshot.BestPracticesScore,
		&pageSpeedJSON,
		&serpJSON,
		&intelligenceJSON,
		&snapshot.AnalyzedURL,
		&snapshot.AnalyzedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if pageSpeedJSON != nil {
		if err := json.Unmarshal(pageSpeedJSON, &snapshot.PageSpeedResult); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de pagespeed_result: %w", err)
		}
	}
	if serpJSON != nil {
		if err := json.Unmarshal(serpJSON, &snapshot.SerpData); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de serp_data: %w", err)
		}
	}
	if intelligenceJSON != nil {
		if err := json.Unmarshal(intelligenceJSON, &snapshot.IntelligenceData); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de intelligence_data: %w", err)
		}
	}

	return snapshot, nil
}

func marshalNullable(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
