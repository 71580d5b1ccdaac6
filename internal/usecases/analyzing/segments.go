package analyzing

import (
	"sort"
	"strings"

	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

// Pesos do CTR e do CPA na nota de segmento.
const (
	segmentCTRWeight = 0.3
	segmentCPAWeight = 0.7
)

const rankingSize = 3

// AnalyzeSegments avalia os segmentos demográficos do breakdown idade/gênero
// de um anúncio e monta o ranking de melhores e piores. Sem breakdown, o
// resultado vem vazio.
func (s *Service) AnalyzeSegments(record *domain.AdRecord, benchmarks *domain.BenchmarkSet) *domain.SegmentAnalysis {
	analysis := &domain.SegmentAnalysis{
		BestSegments:       []string{},
		WorstSegments:      []string{},
		SegmentPerformance: map[string]domain.SegmentPerformance{},
	}

	entries := record.Breakdowns.AgeGender
	if len(entries) == 0 {
		return analysis
	}

	totalSpend := 0.0
	totalConversions := 0
	for i := range entries {
		totalSpend += entries[i].Spend
		totalConversions += entries[i].Conversions
	}

	ordered := make([]domain.SegmentPerformance, 0, len(entries))

	for i := range entries {
		entry := &entries[i]

		name := segmentName(entry.Age, entry.Gender)
		performance := domain.SegmentPerformance{
			SegmentName: name,
			DisplayName: strings.TrimSpace(entry.Age + " " + entry.Gender),
			Metrics:     segmentMetrics(entry),
		}

		if benchmark, ok := benchmarks.Segments[name]; ok {
			performance.Comparison = segmentComparison(performance.Metrics, benchmark)
			performance.Score = utils.RoundWithTwoDecimalPlace(
				performance.Comparison["ctr_delta"]*segmentCTRWeight +
					performance.Comparison["cpa_delta"]*segmentCPAWeight,
			)
		}

		if totalSpend > 0 {
			performance.SpendContribution = utils.RoundWithTwoDecimalPlace((entry.Spend / totalSpend) * 100)
		}
		if totalConversions > 0 {
			performance.ConversionContribution = utils.RoundWithTwoDecimalPlace(
				(float64(entry.Conversions) / float64(totalConversions)) * 100,
			)
		}

		analysis.SegmentPerformance[name] = performance
		ordered = append(ordered, performance)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	for i := 0; i < len(ordered) && i < rankingSize; i++ {
		analysis.BestSegments = append(analysis.BestSegments, ordered[i].SegmentName)
	}
	for i := len(ordered) - 1; i >= 0 && len(analysis.WorstSegments) < rankingSize; i-- {
		analysis.WorstSegments = append(analysis.WorstSegments, ordered[i].SegmentName)
	}

	return analysis
}

// segmentMetrics deriva as métricas do segmento a partir das contagens cruas.
// O CTR de segmento fica como fração clicks/impressions, diferente do CTR
// percentual do anúncio.
func segmentMetrics(entry *domain.BreakdownEntry) domain.SegmentMetrics {
	metrics := domain.SegmentMetrics{
		Spend:       entry.Spend,
		Impressions: entry.Impressions,
		Clicks:      entry.Clicks,
		Conversions: entry.Conversions,
	}

	if entry.Impressions > 0 {
		metrics.CTR = float64(entry.Clicks) / float64(entry.Impressions)
		metrics.CPM = utils.RoundWithTwoDecimalPlace((entry.Spend / float64(entry.Impressions)) * 1000)
	}

	if entry.Conversions > 0 {
		metrics.CPA = utils.RoundWithTwoDecimalPlace(entry.Spend / float64(entry.Conversions))
		if entry.Clicks > 0 {
			metrics.ConversionRate = utils.RoundWithTwoDecimalPlace(
				(float64(entry.Conversions) / float64(entry.Clicks)) * 100,
			)
		}
	}

	return metrics
}

func segmentComparison(metrics domain.SegmentMetrics, benchmark domain.SegmentBenchmark) map[string]float64 {
	comparison := map[string]float64{}

	if benchmark.CTR > 0 {
		comparison["ctr_delta"] = utils.RoundWithTwoDecimalPlace(((metrics.CTR / benchmark.CTR) - 1) * 100)
	}
	if benchmark.CPA > 0 && metrics.CPA > 0 {
		comparison["cpa_delta"] = utils.RoundWithTwoDecimalPlace(((benchmark.CPA / metrics.CPA) - 1) * 100)
	}

	return comparison
}

// segmentName normaliza o par idade/gênero para a chave do segmento:
// minúsculas, hífen e sublinhado viram espaço e o sinal de mais vira "plus".
func segmentName(age, gender string) string {
	name := strings.ToLower(strings.TrimSpace(age + " " + gender))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "+", " plus")
	return name
}
