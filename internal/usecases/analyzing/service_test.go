package analyzing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

func roasPtr(v float64) *float64 { return &v }

func decodeDays(t *testing.T, payload string) []metadomain.RawAdInsight {
	t.Helper()
	var days []metadomain.RawAdInsight
	require.NoError(t, json.Unmarshal([]byte(payload), &days))
	return days
}

func TestComputeBenchmarks_TaxasSobreOsTotais(t *testing.T) {
	service := &Service{}

	days := decodeDays(t, `[
		{"spend": "100.0", "impressions": "10000", "clicks": "100",
		 "conversions": [{"action_type": "lead", "value": "4"}],
		 "video_thruplay_watched_actions": [{"action_type": "video_view", "value": "3000"}],
		 "video_p100_watched_actions": [{"action_type": "video_view", "value": "500"}]},
		{"spend": "300.0", "impressions": "10000", "clicks": "300",
		 "conversions": [{"action_type": "lead", "value": "12"}],
		 "video_thruplay_watched_actions": [{"action_type": "video_view", "value": "4000"}],
		 "video_p100_watched_actions": [{"action_type": "video_view", "value": "1100"}]}
	]`)

	benchmarks := service.ComputeBenchmarks(days)

	// 400 cliques / 20000 impressões, não a média dos CTRs diários.
	assert.Equal(t, 2.00, benchmarks.CTR)
	assert.Equal(t, 20.00, benchmarks.CPM)
	assert.Equal(t, 25.00, benchmarks.CPA)
	assert.Equal(t, 4.00, benchmarks.ConversionRate)
	assert.Equal(t, 35.00, benchmarks.HookRate)
	assert.Equal(t, 8.00, benchmarks.ViewthroughRate)
	assert.True(t, benchmarks.HasData())
}

func TestComputeBenchmarks_SemDias(t *testing.T) {
	service := &Service{}

	benchmarks := service.ComputeBenchmarks(nil)

	assert.False(t, benchmarks.HasData())
	assert.NotNil(t, benchmarks.Segments)
}

func TestCompareWithBenchmarks_LimiteInclusivoDaClassificacao(t *testing.T) {
	service := &Service{}

	benchmarks := &domain.BenchmarkSet{
		CTR:             1.0,
		CPM:             1.2,
		CPA:             1.2,
		ROAS:            1.0,
		HookRate:        1.0,
		ViewthroughRate: 1.0,
	}

	// Todas as seis métricas 20% melhores que a referência: nota exatamente 20.
	metrics := domain.Metrics{
		CTR:             1.2,
		CPM:             1.0,
		CPA:             1.0,
		ROAS:            roasPtr(1.2),
		HookRate:        1.2,
		ViewthroughRate: 1.2,
	}

	comparison := service.CompareWithBenchmarks(metrics, benchmarks)

	require.Len(t, comparison.Deltas, 6)
	assert.InDelta(t, 20.0, comparison.Deltas["ctr"], 0.01)
	assert.InDelta(t, 20.0, comparison.Deltas["cpa"], 0.01)
	assert.InDelta(t, 20.0, comparison.Score, 0.01)

	// O limite é inclusivo: exatamente 20 já sai da média.
	assert.Equal(t, domain.RatingAboveAverage, comparison.Rating)
	assert.Equal(t, 100.0, comparison.StabilityScore)
}

func TestCompareWithBenchmarks_LimiteInclusivoNegativo(t *testing.T) {
	service := &Service{}

	benchmarks := &domain.BenchmarkSet{
		CTR:             1.0,
		CPM:             1.0,
		CPA:             1.0,
		ROAS:            1.0,
		HookRate:        1.0,
		ViewthroughRate: 1.0,
	}

	// Todas as seis métricas 20% piores que a referência: nota exatamente -20.
	metrics := domain.Metrics{
		CTR:             0.8,
		CPM:             1.25,
		CPA:             1.25,
		ROAS:            roasPtr(0.8),
		HookRate:        0.8,
		ViewthroughRate: 0.8,
	}

	comparison := service.CompareWithBenchmarks(metrics, benchmarks)

	assert.InDelta(t, -20.0, comparison.Score, 0.01)
	assert.Equal(t, domain.RatingBelowAverage, comparison.Rating)
}

func TestCompareWithBenchmarks_ClassificacaoAcimaEAbaixo(t *testing.T) {
	service := &Service{}

	benchmarks := &domain.BenchmarkSet{CTR: 1.0, CPA: 10.0}

	above := service.CompareWithBenchmarks(domain.Metrics{CTR: 5.0, CPA: 2.0}, benchmarks)
	assert.Equal(t, domain.RatingAboveAverage, above.Rating)

	below := service.CompareWithBenchmarks(domain.Metrics{CTR: 0.1, CPA: 100.0}, benchmarks)
	assert.Equal(t, domain.RatingBelowAverage, below.Rating)
}

func TestCompareWithBenchmarks_SemReferenciasRetornaZeros(t *testing.T) {
	service := &Service{}

	comparison := service.CompareWithBenchmarks(domain.Metrics{CTR: 2.5}, &domain.BenchmarkSet{})

	// As seis chaves saem mesmo sem referência, todas zeradas.
	require.Len(t, comparison.Deltas, 6)
	for metric, delta := range comparison.Deltas {
		assert.Equalf(t, 0.0, delta, "delta de %s deveria ser zero", metric)
	}
	assert.Equal(t, 0.0, comparison.Score)
	assert.Equal(t, domain.RatingAverage, comparison.Rating)

	// A estabilidade mede a presença das métricas, não das referências.
	assert.InDelta(t, 16.67, comparison.StabilityScore, 0.01)
}

func TestCompareWithBenchmarks_MetricaSemReferenciaEntraComDeltaZero(t *testing.T) {
	service := &Service{}

	// Apenas CTR tem referência; CPA do anúncio zerado fica com delta zero.
	benchmarks := &domain.BenchmarkSet{CTR: 2.0, CPA: 10.0}
	metrics := domain.Metrics{CTR: 3.0, CPA: 0}

	comparison := service.CompareWithBenchmarks(metrics, benchmarks)

	require.Len(t, comparison.Deltas, 6)
	assert.InDelta(t, 50.0, comparison.Deltas["ctr"], 0.01)
	assert.Equal(t, 0.0, comparison.Deltas["cpa"])
	assert.InDelta(t, 5.0, comparison.Score, 0.01)
}

func segmentRecord(entries ...domain.BreakdownEntry) *domain.AdRecord {
	return &domain.AdRecord{
		Ad:         domain.Ad{ID: "ad1"},
		Breakdowns: domain.Breakdowns{AgeGender: entries},
	}
}

func TestAnalyzeSegments_SemBreakdownRetornaVazio(t *testing.T) {
	service := &Service{}

	analysis := service.AnalyzeSegments(segmentRecord(), &domain.BenchmarkSet{})

	assert.Empty(t, analysis.BestSegments)
	assert.Empty(t, analysis.WorstSegments)
	assert.Empty(t, analysis.SegmentPerformance)
}

func TestAnalyzeSegments_NormalizacaoDoNome(t *testing.T) {
	service := &Service{}

	analysis := service.AnalyzeSegments(segmentRecord(
		domain.BreakdownEntry{Age: "25-34", Gender: "female", Metrics: domain.Metrics{Spend: 10, Impressions: 1000, Clicks: 20}},
		domain.BreakdownEntry{Age: "55+", Gender: "male", Metrics: domain.Metrics{Spend: 5, Impressions: 500, Clicks: 5}},
	), &domain.BenchmarkSet{})

	assert.Contains(t, analysis.SegmentPerformance, "25 34 female")
	assert.Contains(t, analysis.SegmentPerformance, "55 plus male")
	assert.Equal(t, "25-34 female", analysis.SegmentPerformance["25 34 female"].DisplayName)
}

func TestAnalyzeSegments_MetricasDeSegmento(t *testing.T) {
	service := &Service{}

	analysis := service.AnalyzeSegments(segmentRecord(
		domain.BreakdownEntry{Age: "25-34", Gender: "female", Metrics: domain.Metrics{
			Spend: 50.0, Impressions: 10000, Clicks: 200, Conversions: 10,
		}},
	), &domain.BenchmarkSet{})

	performance := analysis.SegmentPerformance["25 34 female"]

	// CTR de segmento é fração, não percentual.
	assert.Equal(t, 0.02, performance.Metrics.CTR)
	assert.Equal(t, 5.00, performance.Metrics.CPM)
	assert.Equal(t, 5.00, performance.Metrics.CPA)
	assert.Equal(t, 5.00, performance.Metrics.ConversionRate)
	assert.Equal(t, 100.0, performance.SpendContribution)
	assert.Equal(t, 100.0, performance.ConversionContribution)
}

func TestAnalyzeSegments_RankingComMenosDeTresSegmentos(t *testing.T) {
	service := &Service{}

	benchmarks := &domain.BenchmarkSet{
		Segments: map[string]domain.SegmentBenchmark{
			"25 34 female": {CTR: 0.01, CPA: 10.0},
			"35 44 male":   {CTR: 0.01, CPA: 10.0},
		},
	}

	analysis := service.AnalyzeSegments(segmentRecord(
		domain.BreakdownEntry{Age: "25-34", Gender: "female", Metrics: domain.Metrics{
			Spend: 50.0, Impressions: 10000, Clicks: 200, Conversions: 10,
		}},
		domain.BreakdownEntry{Age: "35-44", Gender: "male", Metrics: domain.Metrics{
			Spend: 100.0, Impressions: 10000, Clicks: 50, Conversions: 2,
		}},
	), benchmarks)

	require.Len(t, analysis.BestSegments, 2)
	require.Len(t, analysis.WorstSegments, 2)

	// O segmento de melhor nota lidera o ranking e fecha a lista dos piores.
	assert.Equal(t, "25 34 female", analysis.BestSegments[0])
	assert.Equal(t, "25 34 female", analysis.WorstSegments[len(analysis.WorstSegments)-1])
	assert.Equal(t, "35 44 male", analysis.WorstSegments[0])
}

func TestAnalyzeSegments_NotaPonderadaDoSegmento(t *testing.T) {
	service := &Service{}

	benchmarks := &domain.BenchmarkSet{
		Segments: map[string]domain.SegmentBenchmark{
			"25 34 female": {CTR: 0.01, CPA: 10.0},
		},
	}

	analysis := service.AnalyzeSegments(segmentRecord(
		domain.BreakdownEntry{Age: "25-34", Gender: "female", Metrics: domain.Metrics{
			Spend: 50.0, Impressions: 10000, Clicks: 200, Conversions: 10,
		}},
	), benchmarks)

	performance := analysis.SegmentPerformance["25 34 female"]

	// ctr_delta = 100 (0.02 vs 0.01), cpa_delta = 100 (5 vs 10).
	assert.InDelta(t, 100.0, performance.Comparison["ctr_delta"], 0.01)
	assert.InDelta(t, 100.0, performance.Comparison["cpa_delta"], 0.01)
	assert.InDelta(t, 100.0, performance.Score, 0.01)
}
