package eligibility

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

// Eligibler seleciona os anúncios de uma conta que entram na análise.
type Eligibler interface {
	FilterEligibleAds(accountID string, filters domain.EligibilityFilters) ([]domain.EligibleAd, error)
}

type Service struct {
	metaService meta.Integrator
}

func NewService(metaService meta.Integrator) Eligibler {
	return &Service{metaService: metaService}
}

// FilterEligibleAds aplica o filtro em dois estágios: primeiro o corte local
// por idade de criação e escopo de adset/campanha, depois a verificação de
// gasto na janela recente. O resultado vem ordenado por gasto decrescente.
func (s *Service) FilterEligibleAds(accountID string, filters domain.EligibilityFilters) ([]domain.EligibleAd, error) {
	ads, err := s.metaService.ListAds(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("eligibility: falha ao listar anúncios da conta")
		return nil, err
	}

	candidates := stageOneFilter(ads, filters, time.Now())

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total_ads":  len(ads),
		"candidates": len(candidates),
	}).Info("eligibility: primeiro estágio concluído")

	// Sem candidatos não há o que consultar na API de gasto.
	if len(candidates) == 0 {
		return []domain.EligibleAd{}, nil
	}

	adIDs := make([]string, 0, len(candidates))
	byID := make(map[string]domain.Ad, len(candidates))
	for _, ad := range candidates {
		adIDs = append(adIDs, ad.ID)
		byID[ad.ID] = ad
	}

	spendFilters := spendWindow(filters.DaysThreshold, time.Now())

	eligible, err := s.metaService.GetAdSpends(accountID, adIDs, spendFilters, filters.MinSpend)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("eligibility: falha ao verificar gasto dos candidatos")
		return nil, err
	}

	// Completa a identidade com os dados do inventário; a resposta de gasto
	// não traz status nem data de criação.
	for i := range eligible {
		if ad, ok := byID[eligible[i].ID]; ok {
			eligible[i].Status = ad.Status
			eligible[i].CreatedTime = ad.CreatedTime
			if eligible[i].Name == "" {
				eligible[i].Name = ad.Name
			}
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Spend > eligible[j].Spend
	})

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"eligible":   len(eligible),
		"min_spend":  filters.MinSpend,
	}).Info("eligibility: filtro concluído")

	return eligible, nil
}

// stageOneFilter corta por idade de criação e por escopo de adset/campanha.
// A comparação de idade é por data, ignorando a hora; o dia limite é inclusivo.
func stageOneFilter(ads []domain.Ad, filters domain.EligibilityFilters, now time.Time) []domain.Ad {
	cutoff := dateOnly(now).AddDate(0, 0, -filters.DaysThreshold)

	candidates := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		if dateOnly(ad.CreatedTime).After(cutoff) {
			continue
		}
		if !matchesScope(ad, filters.AdsetIDs, filters.CampaignIDs) {
			continue
		}
		candidates = append(candidates, ad)
	}

	return candidates
}

// matchesScope aplica as listas opcionais de adset e campanha. Com as duas
// listas presentes, basta pertencer a uma delas.
func matchesScope(ad domain.Ad, adsetIDs, campaignIDs []string) bool {
	inAdsets := contains(adsetIDs, ad.AdsetID)
	inCampaigns := contains(campaignIDs, ad.CampaignID)

	switch {
	case len(adsetIDs) > 0 && len(campaignIDs) > 0:
		return inAdsets || inCampaigns
	case len(adsetIDs) > 0:
		return inAdsets
	case len(campaignIDs) > 0:
		return inCampaigns
	default:
		return true
	}
}

// spendWindow monta a janela de verificação de gasto: termina ontem e cobre
// days dias corridos.
func spendWindow(days int, now time.Time) *domain.InsigthFilters {
	endDate := dateOnly(now).AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -(days - 1))

	return &domain.InsigthFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
