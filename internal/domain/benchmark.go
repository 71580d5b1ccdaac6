package domain

// BenchmarkSet são os valores de referência da conta, calculados uma vez por
// execução a partir dos insights agregados e tratados como somente leitura
// pelo restante da análise.
type BenchmarkSet struct {
	CTR             float64 `json:"ctr"`
	CPM             float64 `json:"cpm"`
	CPA             float64 `json:"cpa"`
	ROAS            float64 `json:"roas"`
	ConversionRate  float64 `json:"conversion_rate"`
	HookRate        float64 `json:"hook_rate"`
	ViewthroughRate float64 `json:"viewthrough_rate"`

	// Benchmarks por segmento demográfico, indexados pelo nome normalizado
	// do segmento. Vazio quando não configurado.
	Segments map[string]SegmentBenchmark `json:"segments,omitempty"`
}

// SegmentBenchmark são as referências de um segmento demográfico.
type SegmentBenchmark struct {
	CTR float64 `json:"ctr"`
	CPA float64 `json:"cpa"`
}

// HasData indica se o conjunto traz alguma referência utilizável.
func (b *BenchmarkSet) HasData() bool {
	if b == nil {
		return false
	}
	return b.CTR > 0 || b.CPM > 0 || b.CPA > 0 || b.ROAS > 0 ||
		b.HookRate > 0 || b.ViewthroughRate > 0
}
