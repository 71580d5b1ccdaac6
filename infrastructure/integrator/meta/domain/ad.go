package metadomain

// Ad é um item da listagem de anúncios de uma conta.
type Ad struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedTime string `json:"created_time"`
	AdsetID     string `json:"adset_id"`
	CampaignID  string `json:"campaign_id"`
}

// Creative é a resposta crua do endpoint de criativos de um anúncio.
type Creative struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ObjectType      string           `json:"object_type"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	ImageURL        string           `json:"image_url"`
	VideoID         string           `json:"video_id"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	LinkData  *LinkData  `json:"link_data"`
	VideoData *VideoData `json:"video_data"`
}

type LinkData struct {
	Message      string        `json:"message"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Link         string        `json:"link"`
	Caption      string        `json:"caption"`
	CallToAction *CallToAction `json:"call_to_action"`
}

type VideoData struct {
	Message      string        `json:"message"`
	Title        string        `json:"title"`
	VideoID      string        `json:"video_id"`
	CallToAction *CallToAction `json:"call_to_action"`
}

type CallToAction struct {
	Type string `json:"type"`
}
