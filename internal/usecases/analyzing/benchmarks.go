package analyzing

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

// ComputeBenchmarks agrega os insights diários da conta em um conjunto único
// de referências. As taxas são recalculadas sobre os totais, nunca pela média
// das taxas diárias.
func (s *Service) ComputeBenchmarks(days []metadomain.RawAdInsight) *domain.BenchmarkSet {
	benchmarks := &domain.BenchmarkSet{
		Segments: map[string]domain.SegmentBenchmark{},
	}

	if len(days) == 0 {
		return benchmarks
	}

	var (
		spend            float64
		impressions      int
		clicks           int
		conversions      int
		conversionValues float64
		videoViews       int
		videoCompletes   int
	)

	for i := range days {
		day := &days[i]

		spend += day.Spend.Float64()
		impressions += day.Impressions.Int()
		clicks += day.Clicks.Int()
		conversionValues += day.ConversionValues.SumByTypes()

		if v, ok := day.Conversions.Scalar(); ok {
			conversions += int(v)
		} else {
			conversions += int(day.Conversions.SumByTypes("lead", "complete_registration", "lead_grouped"))
		}

		videoViews += int(day.VideoThruplay.SumByTypes("video_view"))
		videoCompletes += int(day.VideoP100.SumByTypes("video_view"))
	}

	if impressions > 0 {
		benchmarks.CTR = utils.RoundWithTwoDecimalPlace((float64(clicks) / float64(impressions)) * 100)
		benchmarks.CPM = utils.RoundWithTwoDecimalPlace((spend / float64(impressions)) * 1000)
		benchmarks.HookRate = utils.RoundWithTwoDecimalPlace((float64(videoViews) / float64(impressions)) * 100)
		benchmarks.ViewthroughRate = utils.RoundWithTwoDecimalPlace((float64(videoCompletes) / float64(impressions)) * 100)
	}

	if conversions > 0 {
		benchmarks.CPA = utils.RoundWithTwoDecimalPlace(spend / float64(conversions))
	}

	if clicks > 0 {
		benchmarks.ConversionRate = utils.RoundWithTwoDecimalPlace((float64(conversions) / float64(clicks)) * 100)
	}

	if spend > 0 && conversionValues > 0 {
		benchmarks.ROAS = utils.RoundWithTwoDecimalPlace(conversionValues / spend)
	}

	logrus.WithFields(logrus.Fields{
		"days":        len(days),
		"spend":       spend,
		"impressions": impressions,
		"ctr":         benchmarks.CTR,
		"cpa":         benchmarks.CPA,
	}).Debug("benchmarks: referências da conta calculadas")

	return benchmarks
}
