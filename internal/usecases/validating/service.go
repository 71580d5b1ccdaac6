package validating

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

// Limites das verificações de plausibilidade. Valores acima viram anomalia
// sinalizada, sem invalidar o registro.
const (
	anomalyCTRLimit  = 10.0
	anomalyROASLimit = 20.0
)

// Result é o veredito da validação de um registro: os problemas invalidam,
// as anomalias apenas sinalizam.
type Result struct {
	Valid     bool
	Issues    []domain.ValidationIssue
	Anomalies []string
}

// Validator confere a completude e a plausibilidade de um registro antes da
// análise.
type Validator interface {
	ValidateRecord(record *domain.AdRecord, minSpend float64) Result
	ValidateFilters(filters *domain.InsigthFilters) error
}

type Service struct{}

func NewService() Validator {
	return &Service{}
}

// ValidateRecord exige a identidade completa do anúncio, gasto mínimo e o
// breakdown demográfico. As verificações de plausibilidade geram anomalias
// que acompanham o registro sem descartá-lo.
func (s *Service) ValidateRecord(record *domain.AdRecord, minSpend float64) Result {
	result := Result{Issues: []domain.ValidationIssue{}, Anomalies: []string{}}

	if record == nil {
		result.Issues = append(result.Issues, domain.ValidationIssue{Message: "registro ausente"})
		return result
	}

	addIssue := func(field, message string) {
		result.Issues = append(result.Issues, domain.ValidationIssue{
			AdID:    record.Ad.ID,
			Field:   field,
			Message: message,
		})
	}

	if record.Ad.ID == "" {
		addIssue("ad_id", "identificador do anúncio ausente")
	}
	if record.Ad.Name == "" {
		addIssue("ad_name", "nome do anúncio ausente")
	}
	if record.Ad.CampaignName == "" {
		addIssue("campaign_name", "nome da campanha ausente")
	}
	if record.Ad.CreatedTime.IsZero() {
		addIssue("created_time", "data de criação ausente")
	}

	// O corte de gasto aqui é inclusivo, diferente do corte estrito do filtro
	// de elegibilidade.
	if record.Metrics.Spend < minSpend {
		addIssue("spend", fmt.Sprintf("gasto %.2f abaixo do mínimo %.2f", record.Metrics.Spend, minSpend))
	}

	if len(record.Breakdowns.AgeGender) == 0 {
		addIssue("breakdowns.age_gender", "breakdown demográfico ausente")
	}

	result.Anomalies = detectAnomalies(&record.Metrics)
	result.Valid = len(result.Issues) == 0

	if !result.Valid {
		logrus.WithFields(logrus.Fields{
			"ad_id":  record.Ad.ID,
			"issues": len(result.Issues),
		}).Warn("validation: registro invalidado")
	}

	return result
}

// ValidateFilters confere o período da consulta.
func (s *Service) ValidateFilters(filters *domain.InsigthFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}

func detectAnomalies(metrics *domain.Metrics) []string {
	anomalies := []string{}

	if metrics.CTR > anomalyCTRLimit {
		anomalies = append(anomalies, fmt.Sprintf("ctr %.2f acima do plausível", metrics.CTR))
	}

	if metrics.Impressions == 0 && metrics.Spend > 0 {
		anomalies = append(anomalies, "gasto sem nenhuma impressão")
	}

	if metrics.Spend < 0 || metrics.Impressions < 0 || metrics.Clicks < 0 || metrics.Conversions < 0 {
		anomalies = append(anomalies, "contagem negativa nas métricas")
	}

	if metrics.Conversions > metrics.Clicks {
		anomalies = append(anomalies, "mais conversões que cliques")
	}

	if roas := metrics.ROASValue(); roas > anomalyROASLimit {
		anomalies = append(anomalies, fmt.Sprintf("roas %.2f acima do plausível", roas))
	}

	return anomalies
}
