package meta

import (
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/extracting"
)

// Formato de data/hora usado pela API do Meta em created_time.
const metaTimeLayout = "2006-01-02T15:04:05-0700"

// Tamanho do lote da consulta de gasto do filtro de elegibilidade.
const spendBatchSize = 50

// Integrator expõe as operações do Meta já traduzidas para o domínio da
// análise de criativos.
type Integrator interface {
	ListAds(accountID string) ([]domain.Ad, error)
	GetAdSpends(accountID string, adIDs []string, filters *domain.InsigthFilters, minSpend float64) ([]domain.EligibleAd, error)
	GetAdRecord(ad domain.Ad, filters *domain.InsigthFilters) (*domain.AdRecord, error)
	GetAccountDailyInsights(accountID string, filters *domain.InsigthFilters) ([]metadomain.RawAdInsight, error)
}

type MetaIntegrator struct {
	cfg       *config.Config
	Client    metaclient.Client
	extractor extracting.Extractor
}

func New(cfg *config.Config, client metaclient.Client, extractor extracting.Extractor) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:       cfg,
		Client:    client,
		extractor: extractor,
	}
}

// ListAds retorna o inventário de anúncios da conta com o created_time já
// convertido para time.Time. Itens com data inválida são descartados.
func (s *MetaIntegrator) ListAds(accountID string) ([]domain.Ad, error) {
	rawAds, err := s.Client.ListAds(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: falha ao listar anúncios da conta")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(rawAds))
	for _, raw := range rawAds {
		createdTime, err := time.Parse(metaTimeLayout, raw.CreatedTime)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id":        raw.ID,
				"created_time": raw.CreatedTime,
				"error":        err.Error(),
			}).Warn("inventory: created_time inválido, ignorando anúncio")
			continue
		}

		ads = append(ads, domain.Ad{
			ID:          raw.ID,
			Name:        raw.Name,
			Status:      raw.Status,
			CreatedTime: createdTime,
			AdsetID:     raw.AdsetID,
			CampaignID:  raw.CampaignID,
		})
	}

	return ads, nil
}

// GetAdSpends consulta o gasto agregado dos anúncios informados em lotes,
// retornando apenas os que gastaram estritamente acima de minSpend. Os nomes
// de anúncio, adset e campanha vêm da própria resposta de gasto.
func (s *MetaIntegrator) GetAdSpends(accountID string, adIDs []string, filters *domain.InsigthFilters, minSpend float64) ([]domain.EligibleAd, error) {
	eligible := make([]domain.EligibleAd, 0)

	for start := 0; start < len(adIDs); start += spendBatchSize {
		end := min(start+spendBatchSize, len(adIDs))

		spends, err := s.Client.GetAdSpendBatch(accountID, adIDs[start:end], filters, minSpend)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"batch":      start / spendBatchSize,
				"error":      err.Error(),
			}).Error("eligibility: falha ao consultar gasto do lote, abortando")
			return nil, err
		}

		for _, spend := range spends {
			// O filtro da API já aplica spend > minSpend; o corte local cobre
			// respostas fora do contrato.
			if spend.Spend.Float64() <= minSpend {
				continue
			}

			eligible = append(eligible, domain.EligibleAd{
				Ad: domain.Ad{
					ID:           spend.AdID,
					Name:         spend.AdName,
					AdsetID:      spend.AdsetID,
					AdsetName:    spend.AdsetName,
					CampaignID:   spend.CampaignID,
					CampaignName: spend.CampaignName,
				},
				Spend: spend.Spend.Float64(),
			})
		}
	}

	return eligible, nil
}

// GetAdRecord monta o registro completo de um anúncio no período: métricas
// normalizadas, criativo e breakdowns demográficos e de plataforma. Falha de
// criativo ou de breakdown degrada sem invalidar o registro.
func (s *MetaIntegrator) GetAdRecord(ad domain.Ad, filters *domain.InsigthFilters) (*domain.AdRecord, error) {
	raw, err := s.Client.GetAdInsights(ad.ID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": ad.ID,
			"error": err.Error(),
		}).Error("insights: falha ao obter insights do anúncio")
		return nil, err
	}

	record := &domain.AdRecord{
		Ad:      ad,
		Metrics: s.extractor.ExtractMetrics(raw),
	}

	if raw.AdName != "" {
		record.Ad.Name = raw.AdName
	}
	if raw.AdsetName != "" {
		record.Ad.AdsetName = raw.AdsetName
	}
	if raw.CampaignName != "" {
		record.Ad.CampaignName = raw.CampaignName
	}

	record.Creative = s.fetchCreative(ad.ID)
	record.Breakdowns = s.fetchBreakdowns(ad.ID, filters)

	return record, nil
}

// GetAccountDailyInsights repassa os insights diários agregados da conta,
// usados no cálculo dos benchmarks.
func (s *MetaIntegrator) GetAccountDailyInsights(accountID string, filters *domain.InsigthFilters) ([]metadomain.RawAdInsight, error) {
	return s.Client.GetAccountDailyInsights(accountID, filters)
}

func (s *MetaIntegrator) fetchCreative(adID string) *domain.Creative {
	raw, err := s.Client.GetAdCreative(adID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Warn("creative: falha ao obter criativo, seguindo sem ele")
		return nil
	}
	if raw == nil {
		return nil
	}

	return FactoryCreative(raw)
}

func (s *MetaIntegrator) fetchBreakdowns(adID string, filters *domain.InsigthFilters) domain.Breakdowns {
	breakdowns := domain.Breakdowns{}

	dimensionSets := []struct {
		dimensions []string
		target     *[]domain.BreakdownEntry
	}{
		{[]string{"age", "gender"}, &breakdowns.AgeGender},
		{[]string{"publisher_platform"}, &breakdowns.Platform},
		{[]string{"age"}, &breakdowns.Age},
		{[]string{"gender"}, &breakdowns.Gender},
	}

	for _, set := range dimensionSets {
		rows, err := s.Client.GetAdBreakdowns(adID, filters, set.dimensions)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id":      adID,
				"dimensions": set.dimensions,
				"error":      err.Error(),
			}).Warn("insights: falha ao obter breakdown, seguindo sem ele")
			continue
		}

		*set.target = s.extractor.ExtractBreakdown(rows, set.dimensions)
	}

	return breakdowns
}

// FactoryCreative achata a resposta crua do endpoint de criativos nos campos
// usados pela análise, preferindo link_data e caindo para video_data.
func FactoryCreative(raw *metadomain.Creative) *domain.Creative {
	creative := &domain.Creative{
		ID:       raw.ID,
		VideoID:  raw.VideoID,
		ImageURL: raw.ImageURL,
	}

	if raw.Name != "" {
		creative.Name = &raw.Name
	}
	if raw.ObjectType != "" {
		creative.ObjectType = &raw.ObjectType
	}
	if raw.ThumbnailURL != "" {
		creative.ThumbnailURL = &raw.ThumbnailURL
	}

	spec := raw.ObjectStorySpec
	if spec == nil {
		return creative
	}

	if link := spec.LinkData; link != nil {
		creative.Link = link.Link
		creative.Message = link.Message
		if link.CallToAction != nil {
			creative.CallToActionType = link.CallToAction.Type
		}
		if link.Name != "" {
			creative.Title = &link.Name
		}
		if link.Description != "" {
			creative.Description = &link.Description
		}
		if link.Message != "" {
			creative.Body = &link.Message
		}
	}

	if video := spec.VideoData; video != nil {
		if creative.VideoID == "" {
			creative.VideoID = video.VideoID
		}
		if creative.Message == "" {
			creative.Message = video.Message
		}
		if creative.CallToActionType == "" && video.CallToAction != nil {
			creative.CallToActionType = video.CallToAction.Type
		}
		if creative.Title == nil && video.Title != "" {
			creative.Title = &video.Title
		}
	}

	return creative
}
