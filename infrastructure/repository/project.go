package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

const projectsTable = "projects"

const projectColumns = "id, user_id, name, url, search_terms, competitor_urls, created_at"

type ProjectRepository interface {
	GetByID(id string) (*domain.Project, error)
	FindByURL(url string) ([]*domain.Project, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) GetByID(id string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	project, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
	}

	return project, nil
}

// FindByURL retorna os projetos cuja URL contém o valor informado. Usado pelo
// enfileiramento via webhook; zero correspondências não é erro
func (r *projectRepository) FindByURL(url string) ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		Where(squirrel.ILike{"url": "%" + url + "%"}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear projetos: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projects, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}

	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.URL,
		pq.Array(&project.SearchTerms),
		pq.Array(&project.CompetitorURLs),
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return project, nil
}
