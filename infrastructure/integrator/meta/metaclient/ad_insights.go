package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

const detailedInsightFields = "ad_id,ad_name,campaign_id,campaign_name,adset_id,adset_name," +
	"spend,impressions,clicks,conversions,conversion_values,ctr,cpm,cpp," +
	"cost_per_conversion,cost_per_action_type,conversion_rate_ranking," +
	"quality_ranking,engagement_rate_ranking,video_play_actions," +
	"reach,frequency,unique_clicks,unique_ctr,outbound_clicks,outbound_clicks_ctr," +
	"video_thruplay_watched_actions,video_p25_watched_actions,video_p50_watched_actions," +
	"video_p75_watched_actions,video_p95_watched_actions,video_p100_watched_actions"

// GetAdInsights retorna o registro cru de insights de um anúncio no período.
// Sem permissão para campos de vídeo, devolve um registro com listas de vídeo
// vazias para que as taxas de vídeo ainda possam ser estimadas.
func (c *MetaClient) GetAdInsights(adID string, filters *domain.InsigthFilters) (*metadomain.RawAdInsight, error) {
	endpoint := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Set("fields", detailedInsightFields)
	params.Set("time_range", timeRangeParam(*filters.StartDate, *filters.EndDate))
	params.Set("level", "ad")

	body, err := c.getJSON(endpoint, params)
	if err != nil {
		if errors.Is(err, ErrVideoPermission) {
			logrus.WithField("ad_id", adID).Info("insights: sem permissão para campos de vídeo, degradando para listas vazias")
			return emptyVideoInsight(adID), nil
		}
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("insights: falha ao obter insights do anúncio")
		return nil, err
	}

	var response struct {
		Data []metadomain.RawAdInsight `json:"data"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("insights: erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, errors.New("no data found")
	}

	return &response.Data[0], nil
}

// GetAdBreakdowns retorna os insights de um anúncio fatiados pelas dimensões
// informadas (ex.: age,gender ou publisher_platform), na ordem da API.
func (c *MetaClient) GetAdBreakdowns(adID string, filters *domain.InsigthFilters, dimensions []string) ([]metadomain.RawAdInsight, error) {
	endpoint := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Set("fields", "spend,impressions,clicks,conversions,actions,ctr,cpm,cost_per_conversion,"+
		"video_thruplay_watched_actions,video_p100_watched_actions")
	params.Set("time_range", timeRangeParam(*filters.StartDate, *filters.EndDate))
	params.Set("level", "ad")
	params.Set("breakdowns", strings.Join(dimensions, ","))

	items, err := c.paginate(endpoint, params)
	if err != nil {
		if errors.Is(err, ErrVideoPermission) {
			logrus.WithField("ad_id", adID).Info("insights: sem permissão para campos de vídeo no breakdown, retornando vazio")
			return []metadomain.RawAdInsight{}, nil
		}
		logrus.WithFields(logrus.Fields{
			"ad_id":      adID,
			"dimensions": strings.Join(dimensions, ","),
			"error":      err.Error(),
		}).Error("insights: falha ao obter breakdown do anúncio")
		return nil, err
	}

	rows := make([]metadomain.RawAdInsight, 0, len(items))
	for _, item := range items {
		var row metadomain.RawAdInsight
		if err := json.Unmarshal(item, &row); err != nil {
			logrus.WithError(err).Warn("insights: erro ao decodificar linha de breakdown, ignorando")
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func emptyVideoInsight(adID string) *metadomain.RawAdInsight {
	return &metadomain.RawAdInsight{
		AdID:          adID,
		VideoThruplay: metadomain.ActionList{Present: true},
		VideoP100:     metadomain.ActionList{Present: true},
	}
}
