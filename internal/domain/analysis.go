package domain

import "time"

// BenchmarkComparison é o resultado da comparação de um anúncio com os
// benchmarks da conta.
type BenchmarkComparison struct {
	Deltas         map[string]float64 `json:"metrics_vs_benchmark"`
	Score          float64            `json:"overall_performance_score"`
	Rating         string             `json:"performance_rating"`
	StabilityScore float64            `json:"stability_score"`
}

const (
	RatingAboveAverage = "Above Average"
	RatingAverage      = "Average"
	RatingBelowAverage = "Below Average"
)

// SegmentMetrics são as métricas derivadas de um segmento demográfico.
// O CTR de segmento é calculado como fração (clicks/impressions) a partir
// das contagens cruas, diferente do CTR percentual do fornecedor.
type SegmentMetrics struct {
	Spend          float64 `json:"spend"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	CTR            float64 `json:"ctr"`
	CPM            float64 `json:"cpm"`
	CPA            float64 `json:"cpa"`
	ConversionRate float64 `json:"conversion_rate"`
}

// SegmentPerformance é a avaliação de um segmento demográfico.
type SegmentPerformance struct {
	SegmentName            string             `json:"segment_name"`
	DisplayName            string             `json:"display_name"`
	Metrics                SegmentMetrics     `json:"metrics"`
	Comparison             map[string]float64 `json:"comparison,omitempty"`
	Score                  float64            `json:"segment_score"`
	SpendContribution      float64            `json:"spend_contribution"`
	ConversionContribution float64            `json:"conversion_contribution"`
}

// SegmentAnalysis é o ranking de segmentos de um anúncio.
type SegmentAnalysis struct {
	BestSegments       []string                      `json:"best_segments"`
	WorstSegments      []string                      `json:"worst_segments"`
	SegmentPerformance map[string]SegmentPerformance `json:"segment_performance"`
}

// ValidationIssue descreve um problema encontrado na validação de um anúncio.
type ValidationIssue struct {
	AdID    string `json:"ad_id"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// AnalysisResult amarra um AdRecord à sua análise completa.
type AnalysisResult struct {
	Record       AdRecord             `json:"record"`
	Comparison   *BenchmarkComparison `json:"benchmark_comparison"`
	Segments     *SegmentAnalysis     `json:"segment_analysis"`
	Anomalies    []string             `json:"anomalies,omitempty"`
	AnalysisDate string               `json:"analysis_date"`
}

// RunStats são as estatísticas de uma execução do pipeline.
type RunStats struct {
	RunID        string        `json:"run_id"`
	AccountID    string        `json:"account_id"`
	Region       string        `json:"region"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	AdCount      int           `json:"ad_count"`
	SuccessCount int           `json:"success_count"`
	ErrorCount   int           `json:"error_count"`
	Status       string        `json:"run_status"`
}

const (
	RunStatusCompleted = "completed"
	RunStatusPartial   = "completed_with_errors"
	RunStatusFailed    = "failed"
)

// PerformerSummary é um item dos destaques do resumo do dashboard.
type PerformerSummary struct {
	AdID   string  `json:"ad_id"`
	AdName string  `json:"ad_name"`
	Score  float64 `json:"score"`
	Rating string  `json:"rating"`
}

// DashboardSummary é o resumo de uma execução para o dashboard.
type DashboardSummary struct {
	Date             string             `json:"date"`
	AccountID        string             `json:"account_id"`
	AdsAnalyzed      int                `json:"ads_analyzed"`
	AvgScore         float64            `json:"avg_performance_score"`
	TopPerformers    []PerformerSummary `json:"top_performers"`
	BottomPerformers []PerformerSummary `json:"bottom_performers"`
}
