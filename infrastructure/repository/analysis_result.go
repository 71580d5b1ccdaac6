package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creative-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

const (
	analysisResultsTable = "analysis_results ar"
)

type AnalysisResultRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) ([]*domain.AnalysisResult, error)
	GetByAdID(adID string, limit int) ([]*domain.AnalysisResult, error)
	SaveOrUpdate(accountID string, result *domain.AnalysisResult) error
	DeleteOlderThan(days int) (int64, error)
}

type analysisResultRepository struct {
	conn *postgres.Connection
}

func NewAnalysisResultRepository(conn *postgres.Connection) AnalysisResultRepository {
	return &analysisResultRepository{
		conn: conn,
	}
}

func (r *analysisResultRepository) GetByAccountIDAndDate(accountID string, date time.Time) ([]*domain.AnalysisResult, error) {
	query, args, err := squirrel.
		Select("ar.payload").
		From(analysisResultsTable).
		Where(squirrel.Eq{"ar.account_id": accountID, "ar.analysis_date": date.Format("2006-01-02")}).
		OrderBy("ar.ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryResults(query, args...)
}

func (r *analysisResultRepository) GetByAdID(adID string, limit int) ([]*domain.AnalysisResult, error) {
	builder := squirrel.
		Select("ar.payload").
		From(analysisResultsTable).
		Where(squirrel.Eq{"ar.ad_id": adID}).
		OrderBy("ar.analysis_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryResults(query, args...)
}

func (r *analysisResultRepository) SaveOrUpdate(accountID string, result *domain.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("erro ao serializar o resultado da análise para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("analysis_results").
		Columns("account_id", "ad_id", "analysis_date", "payload").
		Values(
			accountID,
			result.Record.Ad.ID,
			result.AnalysisDate,
			payload,
		).
		Suffix(`
			ON CONFLICT (ad_id, analysis_date) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
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

func (r *analysisResultRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("analysis_results").
		Where(squirrel.Lt{"analysis_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *analysisResultRepository) queryResults(query string, args ...any) ([]*domain.AnalysisResult, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.AnalysisResult, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("erro ao escanear resultado de análise: %w", err)
		}

		result := &domain.AnalysisResult{}
		if err := json.Unmarshal(payload, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do resultado de análise: %w", err)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}
