package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

// GetAdSpendBatch consulta o gasto agregado de um lote de anúncios no período,
// retornando apenas os que gastaram estritamente acima de minSpend. O filtro
// de gasto é aplicado pela própria API via parâmetro filtering.
func (c *MetaClient) GetAdSpendBatch(accountID string, adIDs []string, filters *domain.InsigthFilters, minSpend float64) ([]metadomain.AdSpend, error) {
	if len(adIDs) == 0 {
		return []metadomain.AdSpend{}, nil
	}

	endpoint := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	filtering, err := json.Marshal([]map[string]any{
		{"field": "ad.id", "operator": "IN", "value": adIDs},
		{"field": "spend", "operator": "GREATER_THAN", "value": minSpend},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao construir o filtro de gasto: %w", err)
	}

	params := url.Values{}
	params.Set("fields", "ad_id,ad_name,campaign_id,campaign_name,adset_id,adset_name,spend")
	params.Set("time_range", timeRangeParam(*filters.StartDate, *filters.EndDate))
	params.Set("level", "ad")
	params.Set("filtering", string(filtering))
	params.Set("limit", "500")

	items, err := c.paginate(endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"batch_size": len(adIDs),
			"error":      err.Error(),
		}).Error("insights: falha ao consultar gasto do lote de anúncios")
		return nil, err
	}

	spends := make([]metadomain.AdSpend, 0, len(items))
	for _, item := range items {
		var spend metadomain.AdSpend
		if err := json.Unmarshal(item, &spend); err != nil {
			logrus.WithError(err).Warn("insights: erro ao decodificar gasto de anúncio, ignorando item")
			continue
		}
		spends = append(spends, spend)
	}

	return spends, nil
}
