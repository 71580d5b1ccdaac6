package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

// GetAccountDailyInsights retorna os insights agregados da conta no período,
// um registro por dia (time_increment=1). Alimenta o cálculo de benchmarks.
func (c *MetaClient) GetAccountDailyInsights(accountID string, filters *domain.InsigthFilters) ([]metadomain.RawAdInsight, error) {
	endpoint := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Set("fields", "spend,impressions,clicks,ctr,cpm,cpp,conversions,conversion_values,actions,cost_per_action_type,"+
		"outbound_clicks,outbound_clicks_ctr,video_thruplay_watched_actions,video_p100_watched_actions")
	params.Set("time_range", timeRangeParam(*filters.StartDate, *filters.EndDate))
	params.Set("time_increment", "1")
	params.Set("level", "account")

	items, err := c.paginate(endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: falha ao obter insights diários da conta")
		return nil, err
	}

	days := make([]metadomain.RawAdInsight, 0, len(items))
	for _, item := range items {
		var day metadomain.RawAdInsight
		if err := json.Unmarshal(item, &day); err != nil {
			logrus.WithError(err).Warn("insights: erro ao decodificar dia de insights da conta, ignorando")
			continue
		}
		days = append(days, day)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"days":       len(days),
	}).Debug("insights: insights diários da conta obtidos com sucesso")

	return days, nil
}
