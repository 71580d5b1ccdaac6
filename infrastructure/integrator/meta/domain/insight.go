package metadomain

// RawAdInsight é a resposta crua do endpoint /insights para um anúncio.
// Os campos numéricos chegam como string ou número e os campos de ação
// chegam como escalar ou lista de {action_type, value}; a decodificação
// colapsa as duas formas uma única vez, aqui na borda da API.
type RawAdInsight struct {
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`

	Spend        FlexFloat `json:"spend"`
	Impressions  FlexInt   `json:"impressions"`
	Clicks       FlexInt   `json:"clicks"`
	Reach        FlexInt   `json:"reach"`
	Frequency    FlexFloat `json:"frequency"`
	CTR          FlexFloat `json:"ctr"`
	UniqueClicks FlexInt   `json:"unique_clicks"`
	UniqueCTR    FlexFloat `json:"unique_ctr"`
	CPM          FlexFloat `json:"cpm"`
	CPC          FlexFloat `json:"cpc"`
	CPP          FlexFloat `json:"cpp"`

	Conversions       ActionList `json:"conversions"`
	ConversionValues  ActionList `json:"conversion_values"`
	Actions           ActionList `json:"actions"`
	CostPerActionType ActionList `json:"cost_per_action_type"`
	CostPerConversion FlexFloat  `json:"cost_per_conversion"`
	OutboundClicks    ActionList `json:"outbound_clicks"`
	OutboundClicksCTR ActionList `json:"outbound_clicks_ctr"`

	VideoPlayActions ActionList `json:"video_play_actions"`
	VideoThruplay    ActionList `json:"video_thruplay_watched_actions"`
	VideoP25         ActionList `json:"video_p25_watched_actions"`
	VideoP50         ActionList `json:"video_p50_watched_actions"`
	VideoP75         ActionList `json:"video_p75_watched_actions"`
	VideoP95         ActionList `json:"video_p95_watched_actions"`
	VideoP100        ActionList `json:"video_p100_watched_actions"`

	QualityRanking        string `json:"quality_ranking"`
	ConversionRateRanking string `json:"conversion_rate_ranking"`
	EngagementRateRanking string `json:"engagement_rate_ranking"`

	// Preenchidos apenas nas consultas com breakdowns.
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	PublisherPlatform string `json:"publisher_platform"`

	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}

// AdSpend é o retorno reduzido da consulta de gasto em lote do filtro de
// elegibilidade.
type AdSpend struct {
	AdID         string    `json:"ad_id"`
	AdName       string    `json:"ad_name"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	AdsetID      string    `json:"adset_id"`
	AdsetName    string    `json:"adset_name"`
	Spend        FlexFloat `json:"spend"`
}
