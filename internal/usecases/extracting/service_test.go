package extracting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
)

func decodeRaw(t *testing.T, payload string) *metadomain.RawAdInsight {
	t.Helper()
	var raw metadomain.RawAdInsight
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return &raw
}

func TestExtractMetrics_ConversionsSomenteTiposAceitos(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{
		"spend": "100.00",
		"impressions": "5000",
		"clicks": "200",
		"conversions": [
			{"action_type": "lead", "value": "3"},
			{"action_type": "other", "value": "100"},
			{"action_type": "complete_registration", "value": "2"}
		]
	}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 5, metrics.Conversions)
}

func TestExtractMetrics_ConversoesEscalar(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{"spend": "50", "impressions": "1000", "clicks": "10", "conversions": "7"}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 7, metrics.Conversions)
}

func TestExtractMetrics_HookRateEstimadoQuandoCampoAusente(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{"impressions": "1000"}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 350, metrics.Video3SecViews)
	assert.Equal(t, 35.00, metrics.HookRate)
	assert.Equal(t, 80, metrics.VideoP100Watched)
	assert.Equal(t, 8.00, metrics.ViewthroughRate)
}

func TestExtractMetrics_HookRateEstimadoQuandoListaVazia(t *testing.T) {
	service := NewService()

	// Lista presente mas vazia dispara a mesma estimativa do campo ausente
	raw := decodeRaw(t, `{"impressions": "1000", "video_thruplay_watched_actions": []}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 35.00, metrics.HookRate)
}

func TestExtractMetrics_HookRateSemEstimativaQuandoValorZeroPresente(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{
		"impressions": "1000",
		"video_thruplay_watched_actions": [{"action_type": "video_view", "value": "0"}]
	}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 0, metrics.Video3SecViews)
	assert.Equal(t, 0.0, metrics.HookRate)
}

func TestExtractMetrics_DerivacoesComGuardaDeZero(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{
		"spend": "100.00",
		"impressions": "20000",
		"clicks": "400",
		"conversions": [{"action_type": "lead", "value": "10"}]
	}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 5.00, metrics.CPM)
	assert.Equal(t, 10.00, metrics.CPA)
	assert.Equal(t, 0.25, metrics.CPC)
	assert.Equal(t, 2.50, metrics.ClickToReg)
}

func TestExtractMetrics_SemImpressoesTudoZero(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{"spend": "0", "impressions": "0", "clicks": "0"}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 0.0, metrics.CPM)
	assert.Equal(t, 0.0, metrics.CPA)
	assert.Equal(t, 0.0, metrics.CPC)
	assert.Equal(t, 0.0, metrics.HookRate)
	assert.Equal(t, 0.0, metrics.ViewthroughRate)
}

func TestExtractMetrics_CTRDestinoComoFracao(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{
		"spend": "10",
		"impressions": "1000",
		"clicks": "50",
		"outbound_clicks": [{"action_type": "outbound_click", "value": "25"}]
	}`)

	metrics := service.ExtractMetrics(raw)

	// Fração, não percentual: 25/1000
	assert.Equal(t, 0.025, metrics.CTRDestination)
}

func TestExtractMetrics_ROASDeConversionValues(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{
		"spend": "100",
		"impressions": "1000",
		"conversion_values": [{"action_type": "purchase", "value": "420.00"}]
	}`)

	metrics := service.ExtractMetrics(raw)

	assert.InDelta(t, 4.2, metrics.ROASValue(), 0.0001)
}

func TestExtractMetrics_ValoresInvalidosNaoQuebram(t *testing.T) {
	service := NewService()

	raw := decodeRaw(t, `{"spend": "abc", "impressions": "xyz", "clicks": null}`)

	metrics := service.ExtractMetrics(raw)

	assert.Equal(t, 0.0, metrics.Spend)
	assert.Equal(t, 0, metrics.Impressions)
	assert.Equal(t, 0, metrics.Clicks)
}

func TestExtractBreakdown_PreservaRotulosEOrdem(t *testing.T) {
	service := NewService()

	payload := `[
		{"age": "25-34", "gender": "female", "spend": "25.0", "impressions": "5000", "clicks": "100"},
		{"age": "18-24", "gender": "male", "spend": "15.0", "impressions": "3000", "clicks": "50"},
		{"age": "55+", "gender": "unknown", "spend": "5.0", "impressions": "800", "clicks": "4"}
	]`

	var rows []metadomain.RawAdInsight
	require.NoError(t, json.Unmarshal([]byte(payload), &rows))

	entries := service.ExtractBreakdown(rows, []string{"age", "gender"})

	require.Len(t, entries, 3)
	assert.Equal(t, "25-34", entries[0].Age)
	assert.Equal(t, "female", entries[0].Gender)
	assert.Equal(t, "18-24", entries[1].Age)
	assert.Equal(t, "55+", entries[2].Age)
	assert.Equal(t, 25.0, entries[0].Spend)
}
