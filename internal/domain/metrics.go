package domain

// Metrics é o formato canônico de métricas de um anúncio após a normalização.
// Todo campo é escalar; as formas de lista do fornecedor são colapsadas na
// extração. Campos ponteiro são os removíveis pelo sanitizador de saída.
type Metrics struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`

	// CTR chega do fornecedor já em percentual. CTRDestination é derivado
	// como fração (sem multiplicar por 100); a assimetria é comportamento
	// observado do fornecedor e consumidores já dependem dela.
	CTR            float64 `json:"ctr"`
	CTRDestination float64 `json:"ctr_destination"`

	CPM        float64 `json:"cpm"`
	CPA        float64 `json:"cpa"`
	CPC        float64 `json:"cpc"`
	ClickToReg float64 `json:"click_to_reg"`

	HookRate        float64 `json:"hook_rate"`
	ViewthroughRate float64 `json:"viewthrough_rate"`

	OutboundClicks   int     `json:"outbound_clicks"`
	Video3SecViews   int     `json:"video_3_sec_views"`
	VideoP100Watched int     `json:"video_p100_watched"`
	Frequency        float64 `json:"frequency"`

	// Removidos pelo sanitizador antes da persistência.
	ROAS                  *float64 `json:"roas,omitempty"`
	CPP                   *float64 `json:"cpp,omitempty"`
	Reach                 *int     `json:"reach,omitempty"`
	UniqueClicks          *int     `json:"unique_clicks,omitempty"`
	UniqueCTR             *float64 `json:"unique_ctr,omitempty"`
	ConversionValues      *float64 `json:"conversion_values,omitempty"`
	QualityRanking        *string  `json:"quality_ranking,omitempty"`
	ConversionRateRanking *string  `json:"conversion_rate_ranking,omitempty"`
	EngagementRateRanking *string  `json:"engagement_rate_ranking,omitempty"`
}

// ROASValue retorna o ROAS quando presente, senão zero.
func (m *Metrics) ROASValue() float64 {
	if m.ROAS == nil {
		return 0
	}
	return *m.ROAS
}

// BreakdownEntry é uma fatia de métricas rotulada por dimensão demográfica
// ou de plataforma. Os rótulos são preservados exatamente como a API envia.
type BreakdownEntry struct {
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Platform string `json:"platform,omitempty"`
	Metrics
}

// Breakdowns agrupa as fatias por conjunto de dimensões, na ordem da API.
type Breakdowns struct {
	AgeGender []BreakdownEntry `json:"age_gender,omitempty"`
	Platform  []BreakdownEntry `json:"platform,omitempty"`
	Age       []BreakdownEntry `json:"age,omitempty"`
	Gender    []BreakdownEntry `json:"gender,omitempty"`
}
