package validating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

func validRecord() *domain.AdRecord {
	return &domain.AdRecord{
		Ad: domain.Ad{
			ID:           "ad1",
			Name:         "anúncio teste",
			CampaignName: "campanha teste",
			CreatedTime:  time.Now().AddDate(0, 0, -30),
		},
		Metrics: domain.Metrics{
			Spend:       300.0,
			Impressions: 10000,
			Clicks:      200,
			Conversions: 10,
			CTR:         2.0,
		},
		Breakdowns: domain.Breakdowns{
			AgeGender: []domain.BreakdownEntry{{Age: "25-34", Gender: "female"}},
		},
	}
}

func TestValidateRecord_RegistroCompletoPassa(t *testing.T) {
	service := NewService()

	result := service.ValidateRecord(validRecord(), 250.0)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Anomalies)
}

func TestValidateRecord_GastoNoLimitePassa(t *testing.T) {
	service := NewService()

	record := validRecord()
	record.Metrics.Spend = 250.0

	// Diferente do filtro de elegibilidade, aqui o limite é inclusivo.
	result := service.ValidateRecord(record, 250.0)

	assert.True(t, result.Valid)
}

func TestValidateRecord_CamposObrigatorios(t *testing.T) {
	service := NewService()

	tests := []struct {
		name   string
		mutate func(record *domain.AdRecord)
		field  string
	}{
		{"sem ad_id", func(r *domain.AdRecord) { r.Ad.ID = "" }, "ad_id"},
		{"sem nome", func(r *domain.AdRecord) { r.Ad.Name = "" }, "ad_name"},
		{"sem campanha", func(r *domain.AdRecord) { r.Ad.CampaignName = "" }, "campaign_name"},
		{"sem data de criação", func(r *domain.AdRecord) { r.Ad.CreatedTime = time.Time{} }, "created_time"},
		{"gasto abaixo do mínimo", func(r *domain.AdRecord) { r.Metrics.Spend = 100.0 }, "spend"},
		{"sem breakdown demográfico", func(r *domain.AdRecord) { r.Breakdowns.AgeGender = nil }, "breakdowns.age_gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			result := service.ValidateRecord(record, 250.0)

			require.False(t, result.Valid)
			require.Len(t, result.Issues, 1)
			assert.Equal(t, tt.field, result.Issues[0].Field)
		})
	}
}

func TestValidateRecord_AnomaliasNaoInvalidam(t *testing.T) {
	service := NewService()

	record := validRecord()
	record.Metrics.CTR = 15.0
	record.Metrics.Conversions = 500

	result := service.ValidateRecord(record, 250.0)

	assert.True(t, result.Valid)
	require.Len(t, result.Anomalies, 2)
}

func TestValidateRecord_GastoSemImpressoes(t *testing.T) {
	service := NewService()

	record := validRecord()
	record.Metrics.Impressions = 0
	record.Metrics.Clicks = 0
	record.Metrics.Conversions = 0
	record.Metrics.CTR = 0

	result := service.ValidateRecord(record, 250.0)

	assert.True(t, result.Valid)
	assert.Contains(t, result.Anomalies, "gasto sem nenhuma impressão")
}

func TestValidateRecord_ROASImplausivel(t *testing.T) {
	service := NewService()

	roas := 42.0
	record := validRecord()
	record.Metrics.ROAS = &roas

	result := service.ValidateRecord(record, 250.0)

	assert.True(t, result.Valid)
	require.Len(t, result.Anomalies, 1)
	assert.Contains(t, result.Anomalies[0], "roas")
}

func TestValidateRecord_RegistroAusente(t *testing.T) {
	service := NewService()

	result := service.ValidateRecord(nil, 250.0)

	assert.False(t, result.Valid)
}

func TestValidateFilters(t *testing.T) {
	service := NewService()

	start := time.Now().AddDate(0, 0, -7)
	end := time.Now().AddDate(0, 0, -1)

	assert.NoError(t, service.ValidateFilters(&domain.InsigthFilters{StartDate: &start, EndDate: &end}))
	assert.Error(t, service.ValidateFilters(nil))
	assert.Error(t, service.ValidateFilters(&domain.InsigthFilters{StartDate: &start}))
	assert.Error(t, service.ValidateFilters(&domain.InsigthFilters{StartDate: &end, EndDate: &start}))
}
