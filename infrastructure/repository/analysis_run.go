package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creative-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

const (
	analysisRunsTable = "analysis_runs r"
)

type AnalysisRunRepository interface {
	Save(run *domain.RunStats) error
	GetByRunID(runID string) (*domain.RunStats, error)
	GetLatestByAccountID(accountID string) (*domain.RunStats, error)
	ListByAccountID(accountID string, limit int) ([]*domain.RunStats, error)
}

type analysisRunRepository struct {
	conn *postgres.Connection
}

func NewAnalysisRunRepository(conn *postgres.Connection) AnalysisRunRepository {
	return &analysisRunRepository{
		conn: conn,
	}
}

func (r *analysisRunRepository) Save(run *domain.RunStats) error {
	query := squirrel.StatementBuilder.
		Insert("analysis_runs").
		Columns("run_id", "account_id", "region", "started_at", "duration_ms", "ad_count", "success_count", "error_count", "status").
		Values(
			run.RunID,
			run.AccountID,
			run.Region,
			run.StartedAt,
			run.Duration.Milliseconds(),
			run.AdCount,
			run.SuccessCount,
			run.ErrorCount,
			run.Status,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analysisRunRepository) GetByRunID(runID string) (*domain.RunStats, error) {
	query, args, err := r.selectRuns().
		Where(squirrel.Eq{"r.run_id": runID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	runs, err := r.queryRuns(query, args...)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	return runs[0], nil
}

func (r *analysisRunRepository) GetLatestByAccountID(accountID string) (*domain.RunStats, error) {
	query, args, err := r.selectRuns().
		Where(squirrel.Eq{"r.account_id": accountID}).
		OrderBy("r.started_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	runs, err := r.queryRuns(query, args...)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	return runs[0], nil
}

func (r *analysisRunRepository) ListByAccountID(accountID string, limit int) ([]*domain.RunStats, error) {
	builder := r.selectRuns().
		Where(squirrel.Eq{"r.account_id": accountID}).
		OrderBy("r.started_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRuns(query, args...)
}

func (r *analysisRunRepository) selectRuns() squirrel.SelectBuilder {
	return squirrel.
		Select("r.run_id, r.account_id, r.region, r.started_at, r.duration_ms, r.ad_count, r.success_count, r.error_count, r.status").
		From(analysisRunsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *analysisRunRepository) queryRuns(query string, args ...any) ([]*domain.RunStats, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.RunStats, 0)
	for rows.Next() {
		run := &domain.RunStats{}
		var durationMs int64

		err := rows.Scan(
			&run.RunID,
			&run.AccountID,
			&run.Region,
			&run.StartedAt,
			&durationMs,
			&run.AdCount,
			&run.SuccessCount,
			&run.ErrorCount,
			&run.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução de análise: %w", err)
		}

		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
