package sanitizing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

// Sanitizer prepara um registro para a saída: remove os campos internos de
// diagnóstico e arredonda os valores monetários e de taxa.
type Sanitizer interface {
	SanitizeRecord(record *domain.AdRecord)
}

type Service struct{}

func NewService() Sanitizer {
	return &Service{}
}

// SanitizeRecord remove os campos que não saem do pipeline e aplica o
// arredondamento de duas casas em todas as taxas e valores, nas métricas do
// anúncio, nos breakdowns e no criativo. As taxas de vídeo ficam de fora do
// arredondamento porque podem carregar valores estimados já arredondados no
// cálculo. A sanitização roda uma única vez por registro.
func (s *Service) SanitizeRecord(record *domain.AdRecord) {
	if record == nil || record.Sanitized {
		return
	}

	sanitizeMetrics(&record.Metrics)

	for _, entries := range [][]domain.BreakdownEntry{
		record.Breakdowns.AgeGender,
		record.Breakdowns.Platform,
		record.Breakdowns.Age,
		record.Breakdowns.Gender,
	} {
		for i := range entries {
			sanitizeMetrics(&entries[i].Metrics)
		}
	}

	if record.Creative != nil {
		sanitizeCreative(record.Creative)
	}

	record.Sanitized = true

	logrus.WithField("ad_id", record.Ad.ID).Debug("sanitization: registro sanitizado")
}

func sanitizeMetrics(metrics *domain.Metrics) {
	// Campos de diagnóstico que não saem do pipeline.
	metrics.ROAS = nil
	metrics.CPP = nil
	metrics.Reach = nil
	metrics.UniqueClicks = nil
	metrics.UniqueCTR = nil
	metrics.ConversionValues = nil
	metrics.QualityRanking = nil
	metrics.ConversionRateRanking = nil
	metrics.EngagementRateRanking = nil

	metrics.Spend = utils.RoundWithTwoDecimalPlace(metrics.Spend)
	metrics.CTR = utils.RoundWithTwoDecimalPlace(metrics.CTR)
	metrics.CTRDestination = utils.RoundWithTwoDecimalPlace(metrics.CTRDestination)
	metrics.CPM = utils.RoundWithTwoDecimalPlace(metrics.CPM)
	metrics.CPA = utils.RoundWithTwoDecimalPlace(metrics.CPA)
	metrics.CPC = utils.RoundWithTwoDecimalPlace(metrics.CPC)
	metrics.ClickToReg = utils.RoundWithTwoDecimalPlace(metrics.ClickToReg)
	metrics.Frequency = utils.RoundWithTwoDecimalPlace(metrics.Frequency)
}

func sanitizeCreative(creative *domain.Creative) {
	creative.Name = nil
	creative.ObjectType = nil
	creative.ThumbnailURL = nil
	creative.Description = nil
	creative.Body = nil
	creative.Title = nil
}
