package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
)

func TestFileExporter_ExportAnalysis(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter(dir)

	results := []*domain.AnalysisResult{
		{
			Record: domain.AdRecord{
				Ad: domain.Ad{
					ID:           "ad_1",
					Name:         "Criativo A",
					CampaignName: "Campanha A",
				},
				Metrics: domain.Metrics{
					Spend:    320.50,
					CTR:      1.85,
					HookRate: 35.123456,
				},
			},
			Comparison: &domain.BenchmarkComparison{
				Deltas: map[string]float64{"ctr": 12.5},
				Score:  12.5,
				Rating: domain.RatingAverage,
			},
			AnalysisDate: "2025-03-10",
		},
	}
	summary := &domain.DashboardSummary{
		Date:        "2025-03-10",
		AccountID:   "act_123",
		AdsAnalyzed: 1,
		AvgScore:    12.5,
	}

	path, err := exporter.ExportAnalysis("act_123", "2025-03-10", results, summary)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "analysis_act_123_2025-03-10.json"), path)

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	decoded := analysisFile{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "act_123", decoded.AccountID)
	assert.Equal(t, "2025-03-10", decoded.Date)
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "ad_1", decoded.Results[0].Record.Ad.ID)
	assert.Equal(t, 35.123456, decoded.Results[0].Record.Metrics.HookRate)
	assert.Equal(t, 12.5, decoded.Results[0].Comparison.Score)
	require.NotNil(t, decoded.Summary)
	assert.Equal(t, 1, decoded.Summary.AdsAnalyzed)
}

func TestFileExporter_ExportAnalysis_SanitizedFieldsOmitted(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter(dir)

	// Registro já sanitizado: campos removíveis nil ficam fora do JSON
	results := []*domain.AnalysisResult{
		{
			Record: domain.AdRecord{
				Ad:      domain.Ad{ID: "ad_2", Name: "Criativo B"},
				Metrics: domain.Metrics{Spend: 100},
			},
			AnalysisDate: "2025-03-10",
		},
	}

	path, err := exporter.ExportAnalysis("act_456", "2025-03-10", results, nil)
	require.NoError(t, err)

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(payload)
	assert.NotContains(t, content, "\"roas\"")
	assert.NotContains(t, content, "\"reach\"")
	assert.NotContains(t, content, "\"quality_ranking\"")
	assert.NotContains(t, content, "\"summary\"")
	assert.Contains(t, content, "\"hook_rate\"")
	assert.Contains(t, content, "\"viewthrough_rate\"")
}

func TestFileExporter_ExportAnalysis_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "export")
	exporter := NewFileExporter(dir)

	_, err := exporter.ExportAnalysis("act_789", "2025-03-10", nil, nil)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
