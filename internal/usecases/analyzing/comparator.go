package analyzing

import (
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

// Pesos de cada métrica na nota final. Custo de aquisição e retorno pesam
// mais que as métricas de engajamento.
var metricWeights = map[string]float64{
	"ctr":              0.10,
	"cpa":              0.30,
	"roas":             0.30,
	"cpm":              0.10,
	"hook_rate":        0.10,
	"viewthrough_rate": 0.10,
}

// Limite da nota para sair da classificação média, nos dois sentidos.
const ratingThreshold = 20.0

// CompareWithBenchmarks calcula o desvio percentual de cada métrica contra a
// referência da conta e consolida os desvios em uma nota ponderada. O mapa de
// desvios sempre carrega as seis métricas; as que não têm referência
// utilizável entram com desvio zero e não movem a nota.
func (s *Service) CompareWithBenchmarks(metrics domain.Metrics, benchmarks *domain.BenchmarkSet) *domain.BenchmarkComparison {
	comparison := &domain.BenchmarkComparison{
		Deltas: map[string]float64{
			"ctr":              0,
			"cpa":              0,
			"roas":             0,
			"cpm":              0,
			"hook_rate":        0,
			"viewthrough_rate": 0,
		},
		Rating:         domain.RatingAverage,
		StabilityScore: stabilityScore(metrics),
	}

	if !benchmarks.HasData() {
		return comparison
	}

	// Métricas onde maior é melhor.
	addHigherBetterDelta(comparison.Deltas, "ctr", metrics.CTR, benchmarks.CTR)
	addHigherBetterDelta(comparison.Deltas, "roas", metrics.ROASValue(), benchmarks.ROAS)
	addHigherBetterDelta(comparison.Deltas, "hook_rate", metrics.HookRate, benchmarks.HookRate)
	addHigherBetterDelta(comparison.Deltas, "viewthrough_rate", metrics.ViewthroughRate, benchmarks.ViewthroughRate)

	// Métricas de custo, onde menor é melhor.
	addLowerBetterDelta(comparison.Deltas, "cpa", metrics.CPA, benchmarks.CPA)
	addLowerBetterDelta(comparison.Deltas, "cpm", metrics.CPM, benchmarks.CPM)

	score := 0.0
	for metric, delta := range comparison.Deltas {
		score += delta * metricWeights[metric]
	}
	comparison.Score = utils.RoundWithTwoDecimalPlace(score)

	// O limite é inclusivo nos dois sentidos.
	switch {
	case comparison.Score >= ratingThreshold:
		comparison.Rating = domain.RatingAboveAverage
	case comparison.Score <= -ratingThreshold:
		comparison.Rating = domain.RatingBelowAverage
	}

	return comparison
}

func addHigherBetterDelta(deltas map[string]float64, metric string, actual, benchmark float64) {
	if benchmark <= 0 {
		return
	}
	deltas[metric] = utils.RoundWithTwoDecimalPlace(((actual / benchmark) - 1) * 100)
}

func addLowerBetterDelta(deltas map[string]float64, metric string, actual, benchmark float64) {
	if benchmark <= 0 || actual <= 0 {
		return
	}
	deltas[metric] = utils.RoundWithTwoDecimalPlace(((benchmark / actual) - 1) * 100)
}

// stabilityScore mede quantas das seis métricas comparadas chegaram com valor
// utilizável, como proporção percentual.
func stabilityScore(metrics domain.Metrics) float64 {
	values := []float64{
		metrics.CTR,
		metrics.CPA,
		metrics.ROASValue(),
		metrics.CPM,
		metrics.HookRate,
		metrics.ViewthroughRate,
	}

	present := 0
	for _, v := range values {
		if v > 0 {
			present++
		}
	}

	return utils.RoundWithTwoDecimalPlace((float64(present) / float64(len(values))) * 100)
}
