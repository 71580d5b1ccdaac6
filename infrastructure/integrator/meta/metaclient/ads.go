package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
)

// ListAds retorna o inventário completo de anúncios da conta, com todas as
// páginas materializadas.
func (c *MetaClient) ListAds(accountID string) ([]metadomain.Ad, error) {
	endpoint := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Set("fields", "id,name,status,created_time,adset_id,campaign_id")
	params.Set("limit", "1000")

	items, err := c.paginate(endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("inventory: falha ao listar anúncios da conta")
		return nil, err
	}

	ads := make([]metadomain.Ad, 0, len(items))
	for _, item := range items {
		var ad metadomain.Ad
		if err := json.Unmarshal(item, &ad); err != nil {
			logrus.WithError(err).Warn("inventory: erro ao decodificar anúncio, ignorando item")
			continue
		}
		ads = append(ads, ad)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total_ads":  len(ads),
	}).Debug("inventory: anúncios da conta listados com sucesso")

	return ads, nil
}
