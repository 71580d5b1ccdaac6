package extracting

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

// Tipos de ação aceitos como conversão/registro.
var conversionActionTypes = []string{"lead", "complete_registration", "lead_grouped"}

const videoViewActionType = "video_view"

// Proporções médias de mercado usadas quando o campo de vídeo vem ausente
// ou como lista vazia (tipicamente por falta de permissão do aplicativo).
const (
	estimatedHookShare        = 0.35
	estimatedViewthroughShare = 0.08
)

// Extractor normaliza um registro cru de insights em métricas canônicas.
// Nunca retorna erro: dado ausente ou inválido degrada para zero.
type Extractor interface {
	ExtractMetrics(raw *metadomain.RawAdInsight) domain.Metrics
	ExtractBreakdown(rows []metadomain.RawAdInsight, dimensions []string) []domain.BreakdownEntry
}

type Service struct{}

func NewService() Extractor {
	return &Service{}
}

// ExtractMetrics colapsa as formas escalar/lista do fornecedor em métricas
// escalares, aplicando as regras de derivação e estimativa.
func (s *Service) ExtractMetrics(raw *metadomain.RawAdInsight) domain.Metrics {
	if raw == nil {
		return domain.Metrics{}
	}

	m := domain.Metrics{
		Spend:       raw.Spend.Float64(),
		Impressions: raw.Impressions.Int(),
		Clicks:      raw.Clicks.Int(),
		CTR:         raw.CTR.Float64(),
		Frequency:   raw.Frequency.Float64(),
	}

	m.Conversions = extractConversions(raw.Conversions)
	m.OutboundClicks = int(sumActionList(raw.OutboundClicks))

	// Campos informativos que o sanitizador remove antes da persistência.
	m.Reach = intPtr(raw.Reach.Int())
	m.UniqueClicks = intPtr(raw.UniqueClicks.Int())
	m.UniqueCTR = floatPtr(raw.UniqueCTR.Float64())
	m.CPP = floatPtr(raw.CPP.Float64())
	if raw.QualityRanking != "" {
		m.QualityRanking = stringPtr(raw.QualityRanking)
	}
	if raw.ConversionRateRanking != "" {
		m.ConversionRateRanking = stringPtr(raw.ConversionRateRanking)
	}
	if raw.EngagementRateRanking != "" {
		m.EngagementRateRanking = stringPtr(raw.EngagementRateRanking)
	}

	conversionValues := sumActionList(raw.ConversionValues)
	if conversionValues > 0 {
		m.ConversionValues = floatPtr(conversionValues)
	}

	// CPM: usa o valor direto quando presente e positivo, senão deriva.
	m.CPM = raw.CPM.Float64()
	if m.CPM == 0 && m.Impressions > 0 {
		m.CPM = utils.RoundWithTwoDecimalPlace((m.Spend / float64(m.Impressions)) * 1000)
	}

	// CPA: custo por conversão direto, senão spend/conversões.
	m.CPA = raw.CostPerConversion.Float64()
	if m.CPA == 0 && m.Conversions > 0 {
		m.CPA = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Conversions))
	}

	// CPC derivado de spend/clicks.
	m.CPC = raw.CPC.Float64()
	if m.CPC == 0 && m.Clicks > 0 {
		m.CPC = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Clicks))
	}

	m.ROAS = floatPtr(extractROAS(raw, m.Spend, conversionValues))

	// CTR de destino: valor direto do fornecedor quando presente, senão a
	// fração outbound_clicks/impressions. Fica como fração mesmo, diferente
	// do CTR percentual; comportamento observado do fornecedor, preservado.
	if v, ok := firstActionValue(raw.OutboundClicksCTR); ok {
		m.CTRDestination = v
	} else if m.Impressions > 0 && m.OutboundClicks > 0 {
		m.CTRDestination = float64(m.OutboundClicks) / float64(m.Impressions)
	}

	// Click to Reg: conversões/cliques em percentual.
	if m.Clicks > 0 {
		m.ClickToReg = utils.RoundWithTwoDecimalPlace((float64(m.Conversions) / float64(m.Clicks)) * 100)
	}

	m.Video3SecViews = extractVideoViews(raw.VideoThruplay, m.Impressions, estimatedHookShare)
	m.VideoP100Watched = extractVideoViews(raw.VideoP100, m.Impressions, estimatedViewthroughShare)

	if m.Impressions > 0 {
		if m.Video3SecViews > 0 {
			m.HookRate = utils.RoundWithTwoDecimalPlace((float64(m.Video3SecViews) / float64(m.Impressions)) * 100)
		}
		if m.VideoP100Watched > 0 {
			m.ViewthroughRate = utils.RoundWithTwoDecimalPlace((float64(m.VideoP100Watched) / float64(m.Impressions)) * 100)
		}
	}

	return m
}

// ExtractBreakdown aplica a extração por linha de breakdown, preservando os
// rótulos de dimensão e a ordem das linhas.
func (s *Service) ExtractBreakdown(rows []metadomain.RawAdInsight, dimensions []string) []domain.BreakdownEntry {
	entries := make([]domain.BreakdownEntry, 0, len(rows))

	for i := range rows {
		row := &rows[i]
		entry := domain.BreakdownEntry{
			Age:      row.Age,
			Gender:   row.Gender,
			Platform: row.PublisherPlatform,
			Metrics:  s.ExtractMetrics(row),
		}
		entries = append(entries, entry)
	}

	logrus.WithFields(logrus.Fields{
		"dimensions": dimensions,
		"rows":       len(entries),
	}).Debug("extração de breakdown concluída")

	return entries
}

// extractConversions aceita a forma escalar e a forma lista. Na forma lista,
// soma apenas os tipos de ação de conversão/registro aceitos.
func extractConversions(list metadomain.ActionList) int {
	if v, ok := list.Scalar(); ok {
		return int(v)
	}
	return int(list.SumByTypes(conversionActionTypes...))
}

// extractROAS prioriza conversion_values/spend e cai para o custo da ação de
// compra em cost_per_action_type.
func extractROAS(raw *metadomain.RawAdInsight, spend, conversionValues float64) float64 {
	if spend > 0 && conversionValues > 0 {
		return conversionValues / spend
	}

	if purchaseValue, ok := raw.CostPerActionType.ValueOf("purchase"); ok {
		if spend > 0 && purchaseValue > 0 {
			return purchaseValue / spend
		}
	}

	return 0
}

// extractVideoViews soma as visualizações video_view da lista. Quando a lista
// está ausente ou vazia (e há impressões), substitui pela estimativa de
// mercado; presença com valor zero não dispara a estimativa.
func extractVideoViews(list metadomain.ActionList, impressions int, estimatedShare float64) int {
	if list.IsEmpty() {
		if impressions > 0 {
			return int(float64(impressions) * estimatedShare)
		}
		return 0
	}

	return int(list.SumByTypes(videoViewActionType))
}

func sumActionList(list metadomain.ActionList) float64 {
	if v, ok := list.Scalar(); ok {
		return v
	}
	return list.SumByTypes()
}

func firstActionValue(list metadomain.ActionList) (float64, bool) {
	if len(list.Items) == 0 {
		return 0, false
	}
	return list.Items[0].Value.Float64(), true
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }
