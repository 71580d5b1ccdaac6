package analyzing

import (
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

// Analyzer compara as métricas de um anúncio com as referências da conta e
// avalia os segmentos demográficos.
type Analyzer interface {
	ComputeBenchmarks(days []metadomain.RawAdInsight) *domain.BenchmarkSet
	CompareWithBenchmarks(metrics domain.Metrics, benchmarks *domain.BenchmarkSet) *domain.BenchmarkComparison
	AnalyzeSegments(record *domain.AdRecord, benchmarks *domain.BenchmarkSet) *domain.SegmentAnalysis
}

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}
