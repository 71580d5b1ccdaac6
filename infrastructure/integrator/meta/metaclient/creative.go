package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
)

// GetAdCreative retorna os detalhes do criativo de um anúncio. Sem permissão
// para os campos de criativo, retorna nil sem erro.
func (c *MetaClient) GetAdCreative(adID string) (*metadomain.Creative, error) {
	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Set("fields", "creative{id,name,object_type,thumbnail_url,image_url,video_id,"+
		"object_story_spec{link_data{message,name,description,link,caption,call_to_action},"+
		"video_data{message,title,video_id,call_to_action}}}")

	body, err := c.getJSON(endpoint, params)
	if err != nil {
		if errors.Is(err, ErrVideoPermission) {
			logrus.WithField("ad_id", adID).Info("creative: sem permissão para campos de criativo, ignorando")
			return nil, nil
		}
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("creative: falha ao obter criativo do anúncio")
		return nil, err
	}

	var response struct {
		Creative *metadomain.Creative `json:"creative"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("creative: erro ao decodificar JSON")
		return nil, err
	}

	return response.Creative, nil
}
