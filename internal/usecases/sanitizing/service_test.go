package sanitizing

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

func roas(v float64) *float64  { return &v }
func str(v string) *string     { return &v }
func intVal(v int) *int        { return &v }
func float(v float64) *float64 { return &v }

func dirtyRecord() *domain.AdRecord {
	return &domain.AdRecord{
		Ad: domain.Ad{ID: "ad1", Name: "anúncio"},
		Metrics: domain.Metrics{
			Spend:           123.456789,
			CTR:             2.34567,
			CTRDestination:  0.025678,
			CPM:             5.12345,
			HookRate:        35.123456,
			ViewthroughRate: 8.654321,
			ROAS:            roas(4.2),
			CPP:             float(1.5),
			Reach:           intVal(9000),
			UniqueClicks:    intVal(80),
			UniqueCTR:       float(0.9),
			QualityRanking:  str("above_average"),
		},
		Breakdowns: domain.Breakdowns{
			AgeGender: []domain.BreakdownEntry{
				{Age: "25-34", Gender: "female", Metrics: domain.Metrics{
					Spend: 10.987654,
					ROAS:  roas(2.0),
				}},
			},
			Platform: []domain.BreakdownEntry{
				{Platform: "instagram", Metrics: domain.Metrics{
					CPM:   3.99999,
					Reach: intVal(100),
				}},
			},
		},
		Creative: &domain.Creative{
			ID:           "cr1",
			ImageURL:     "https://example.com/img.png",
			Name:         str("criativo"),
			ObjectType:   str("VIDEO"),
			ThumbnailURL: str("https://example.com/thumb.png"),
			Description:  str("descrição"),
			Body:         str("corpo"),
			Title:        str("título"),
		},
	}
}

func TestSanitizeRecord_RemoveCamposInternos(t *testing.T) {
	service := NewService()

	record := dirtyRecord()
	service.SanitizeRecord(record)

	assert.Nil(t, record.Metrics.ROAS)
	assert.Nil(t, record.Metrics.CPP)
	assert.Nil(t, record.Metrics.Reach)
	assert.Nil(t, record.Metrics.UniqueClicks)
	assert.Nil(t, record.Metrics.UniqueCTR)
	assert.Nil(t, record.Metrics.QualityRanking)

	// A remoção alcança os breakdowns.
	assert.Nil(t, record.Breakdowns.AgeGender[0].ROAS)
	assert.Nil(t, record.Breakdowns.Platform[0].Reach)
}

func TestSanitizeRecord_ArredondamentoUniversal(t *testing.T) {
	service := NewService()

	record := dirtyRecord()
	service.SanitizeRecord(record)

	assert.Equal(t, 123.46, record.Metrics.Spend)
	assert.Equal(t, 2.35, record.Metrics.CTR)
	assert.Equal(t, 0.03, record.Metrics.CTRDestination)
	assert.Equal(t, 10.99, record.Breakdowns.AgeGender[0].Spend)
	assert.Equal(t, 4.00, record.Breakdowns.Platform[0].CPM)

	// As taxas de vídeo não entram no arredondamento universal.
	assert.Equal(t, 35.123456, record.Metrics.HookRate)
	assert.Equal(t, 8.654321, record.Metrics.ViewthroughRate)
}

func TestSanitizeRecord_LimpaCriativo(t *testing.T) {
	service := NewService()

	record := dirtyRecord()
	service.SanitizeRecord(record)

	assert.Nil(t, record.Creative.Name)
	assert.Nil(t, record.Creative.ObjectType)
	assert.Nil(t, record.Creative.ThumbnailURL)
	assert.Nil(t, record.Creative.Description)
	assert.Nil(t, record.Creative.Body)
	assert.Nil(t, record.Creative.Title)

	// Os campos de mídia permanecem.
	assert.Equal(t, "cr1", record.Creative.ID)
	assert.Equal(t, "https://example.com/img.png", record.Creative.ImageURL)
}

func TestSanitizeRecord_Idempotente(t *testing.T) {
	service := NewService()

	record := dirtyRecord()
	service.SanitizeRecord(record)

	first, err := jsoniter.Marshal(record)
	require.NoError(t, err)

	service.SanitizeRecord(record)

	second, err := jsoniter.Marshal(record)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestSanitizeRecord_SaidaJSONSemCamposRemovidos(t *testing.T) {
	service := NewService()

	record := dirtyRecord()
	service.SanitizeRecord(record)

	payload, err := jsoniter.Marshal(record)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, jsoniter.Unmarshal(payload, &out))

	metrics, ok := out["metrics"].(map[string]any)
	require.True(t, ok)

	assert.NotContains(t, metrics, "roas")
	assert.NotContains(t, metrics, "reach")
	assert.NotContains(t, metrics, "cpp")
	assert.NotContains(t, metrics, "unique_clicks")
	assert.NotContains(t, metrics, "quality_ranking")

	// As métricas obrigatórias sempre saem, mesmo zeradas.
	assert.Contains(t, metrics, "hook_rate")
	assert.Contains(t, metrics, "viewthrough_rate")
	assert.Contains(t, metrics, "cpc")
	assert.Contains(t, metrics, "click_to_reg")
}

func TestSanitizeRecord_RegistroNulo(t *testing.T) {
	service := NewService()

	assert.NotPanics(t, func() { service.SanitizeRecord(nil) })
}
