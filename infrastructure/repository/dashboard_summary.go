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
	dashboardSummariesTable = "dashboard_summaries ds"
)

type DashboardSummaryRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DashboardSummary, error)
	GetLatestByAccountID(accountID string) (*domain.DashboardSummary, error)
	SaveOrUpdate(summary *domain.DashboardSummary) error
}

type dashboardSummaryRepository struct {
	conn *postgres.Connection
}

func NewDashboardSummaryRepository(conn *postgres.Connection) DashboardSummaryRepository {
	return &dashboardSummaryRepository{
		conn: conn,
	}
}

func (r *dashboardSummaryRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DashboardSummary, error) {
	query, args, err := squirrel.
		Select("ds.payload").
		From(dashboardSummariesTable).
		Where(squirrel.Eq{"ds.account_id": accountID, "ds.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySummary(query, args...)
}

func (r *dashboardSummaryRepository) GetLatestByAccountID(accountID string) (*domain.DashboardSummary, error) {
	query, args, err := squirrel.
		Select("ds.payload").
		From(dashboardSummariesTable).
		Where(squirrel.Eq{"ds.account_id": accountID}).
		OrderBy("ds.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySummary(query, args...)
}

func (r *dashboardSummaryRepository) SaveOrUpdate(summary *domain.DashboardSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar o resumo do dashboard para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("dashboard_summaries").
		Columns("account_id", "date", "payload").
		Values(
			summary.AccountID,
			summary.Date,
			payload,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
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

func (r *dashboardSummaryRepository) querySummary(query string, args ...any) (*domain.DashboardSummary, error) {
	var payload []byte

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo do dashboard: %w", err)
	}

	summary := &domain.DashboardSummary{}
	if err := json.Unmarshal(payload, summary); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do resumo do dashboard: %w", err)
	}

	return summary, nil
}
