package domain

import "time"

type InsigthFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Ad é a identidade de um anúncio no inventário da conta.
type Ad struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	CreatedTime  time.Time `json:"created_time"`
	AdsetID      string    `json:"adset_id"`
	AdsetName    string    `json:"adset_name,omitempty"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name,omitempty"`
}

// EligibleAd é um anúncio aprovado pelo filtro de elegibilidade, com o gasto
// agregado da janela de verificação.
type EligibleAd struct {
	Ad
	Spend float64 `json:"spend"`
}

// EligibilityFilters parametriza o filtro de elegibilidade. As listas de
// adset e campanha são opcionais; vazias significam sem restrição de escopo.
type EligibilityFilters struct {
	DaysThreshold int
	MinSpend      float64
	AdsetIDs      []string
	CampaignIDs   []string
}

// Creative são os descritores de texto e mídia do criativo de um anúncio.
// Campos ponteiro são os removíveis pelo sanitizador de saída.
type Creative struct {
	ID               string  `json:"id,omitempty"`
	VideoID          string  `json:"video_id,omitempty"`
	ImageURL         string  `json:"image_url,omitempty"`
	Link             string  `json:"link,omitempty"`
	Message          string  `json:"message,omitempty"`
	CallToActionType string  `json:"call_to_action_type,omitempty"`
	Name             *string `json:"name,omitempty"`
	ObjectType       *string `json:"object_type,omitempty"`
	ThumbnailURL     *string `json:"thumbnail_url,omitempty"`
	Description      *string `json:"description,omitempty"`
	Body             *string `json:"body,omitempty"`
	Title            *string `json:"title,omitempty"`
}

// AdRecord agrega identidade, métricas normalizadas, criativo e breakdowns
// de um anúncio, pronto para a análise.
type AdRecord struct {
	Ad         Ad         `json:"ad"`
	Metrics    Metrics    `json:"metrics"`
	Creative   *Creative  `json:"creative,omitempty"`
	Breakdowns Breakdowns `json:"breakdowns"`

	// Marca que o registro já passou pelo sanitizador de saída.
	Sanitized bool `json:"-"`
}
