package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/creative-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/analyzing"
	eligibilitymocks "github.com/vfg2006/creative-analysis-api/internal/usecases/eligibility/mocks"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/sanitizing"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/validating"
	"go.uber.org/mock/gomock"
)

type pipelineFixture struct {
	service     Runner
	metaMock    *metamocks.MockIntegrator
	eligibler   *eligibilitymocks.MockEligibler
	resultRepo  *repomocks.MockAnalysisResultRepository
	runRepo     *repomocks.MockAnalysisRunRepository
	summaryRepo *repomocks.MockDashboardSummaryRepository
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Analysis: config.Analysis{
			DaysThreshold: 7,
			MinSpend:      250.0,
		},
		Meta: config.Meta{
			AccountsByRegion: map[string]string{"NAM": "123"},
		},
	}

	f := &pipelineFixture{
		metaMock:    metamocks.NewMockIntegrator(ctrl),
		eligibler:   eligibilitymocks.NewMockEligibler(ctrl),
		resultRepo:  repomocks.NewMockAnalysisResultRepository(ctrl),
		runRepo:     repomocks.NewMockAnalysisRunRepository(ctrl),
		summaryRepo: repomocks.NewMockDashboardSummaryRepository(ctrl),
	}

	f.service = NewService(
		cfg,
		f.metaMock,
		f.eligibler,
		analyzing.NewService(),
		validating.NewService(),
		sanitizing.NewService(),
		f.resultRepo,
		f.runRepo,
		f.summaryRepo,
		nil,
	)

	return f
}

func eligibleAd(id string, spend float64) domain.EligibleAd {
	return domain.EligibleAd{
		Ad: domain.Ad{
			ID:           id,
			Name:         "anúncio " + id,
			CampaignName: "campanha",
			CreatedTime:  time.Now().AddDate(0, 0, -30),
		},
		Spend: spend,
	}
}

func adRecord(id string, spend float64) *domain.AdRecord {
	return &domain.AdRecord{
		Ad: domain.Ad{
			ID:           id,
			Name:         "anúncio " + id,
			CampaignName: "campanha",
			CreatedTime:  time.Now().AddDate(0, 0, -30),
		},
		Metrics: domain.Metrics{
			Spend:       spend,
			Impressions: 10000,
			Clicks:      200,
			Conversions: 10,
			CTR:         2.0,
			CPM:         5.0,
			CPA:         spend / 10,
		},
		Breakdowns: domain.Breakdowns{
			AgeGender: []domain.BreakdownEntry{
				{Age: "25-34", Gender: "female", Metrics: domain.Metrics{Spend: spend, Impressions: 10000, Clicks: 200, Conversions: 10}},
			},
		},
	}
}

func TestRunForAccount_ExecucaoCompleta(t *testing.T) {
	f := newPipelineFixture(t)

	f.eligibler.EXPECT().
		FilterEligibleAds("123", domain.EligibilityFilters{DaysThreshold: 7, MinSpend: 250.0}).
		Return([]domain.EligibleAd{eligibleAd("ad1", 900.0), eligibleAd("ad2", 400.0)}, nil)

	f.metaMock.EXPECT().GetAccountDailyInsights("123", gomock.Any()).Return([]metadomain.RawAdInsight{}, nil)
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(adRecord("ad1", 900.0), nil)
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(adRecord("ad2", 400.0), nil)

	f.resultRepo.EXPECT().SaveOrUpdate("123", gomock.Any()).Return(nil).Times(2)
	f.summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(summary *domain.DashboardSummary) error {
		assert.Equal(t, 2, summary.AdsAnalyzed)
		assert.Len(t, summary.TopPerformers, 2)
		assert.Len(t, summary.BottomPerformers, 2)
		return nil
	})
	f.runRepo.EXPECT().Save(gomock.Any()).Return(nil)

	run, err := f.service.RunForAccount("123", "NAM")
	require.NoError(t, err)

	assert.Equal(t, "123", run.AccountID)
	assert.Equal(t, "NAM", run.Region)
	assert.Equal(t, 2, run.AdCount)
	assert.Equal(t, 2, run.SuccessCount)
	assert.Equal(t, 0, run.ErrorCount)
	assert.Equal(t, domain.RunStatusCompleted, run.Status)
	assert.NotEmpty(t, run.RunID)
}

func TestRunForAccount_FalhaDeUmAnuncioNaoDerrubaOsDemais(t *testing.T) {
	f := newPipelineFixture(t)

	f.eligibler.EXPECT().
		FilterEligibleAds("123", gomock.Any()).
		Return([]domain.EligibleAd{eligibleAd("ad1", 900.0), eligibleAd("ad2", 400.0)}, nil)

	f.metaMock.EXPECT().GetAccountDailyInsights("123", gomock.Any()).Return(nil, errors.New("api indisponível"))
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(adRecord("ad2", 400.0), nil)

	f.resultRepo.EXPECT().SaveOrUpdate("123", gomock.Any()).Return(nil)
	f.summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	f.runRepo.EXPECT().Save(gomock.Any()).Return(nil)

	run, err := f.service.RunForAccount("123", "NAM")
	require.NoError(t, err)

	assert.Equal(t, 1, run.SuccessCount)
	assert.Equal(t, 1, run.ErrorCount)
	assert.Equal(t, domain.RunStatusPartial, run.Status)
}

func TestRunForAccount_RegistroInvalidoContaComoErro(t *testing.T) {
	f := newPipelineFixture(t)

	f.eligibler.EXPECT().
		FilterEligibleAds("123", gomock.Any()).
		Return([]domain.EligibleAd{eligibleAd("ad1", 900.0)}, nil)

	record := adRecord("ad1", 900.0)
	record.Ad.CampaignName = ""

	f.metaMock.EXPECT().GetAccountDailyInsights("123", gomock.Any()).Return([]metadomain.RawAdInsight{}, nil)
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(record, nil)

	f.summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	f.runRepo.EXPECT().Save(gomock.Any()).Return(nil)

	run, err := f.service.RunForAccount("123", "NAM")
	require.NoError(t, err)

	assert.Equal(t, 0, run.SuccessCount)
	assert.Equal(t, 1, run.ErrorCount)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
}

func TestRunForAccount_ResultadoSaiSanitizado(t *testing.T) {
	f := newPipelineFixture(t)

	f.eligibler.EXPECT().
		FilterEligibleAds("123", gomock.Any()).
		Return([]domain.EligibleAd{eligibleAd("ad1", 900.0)}, nil)

	roas := 4.2
	record := adRecord("ad1", 900.0)
	record.Metrics.ROAS = &roas

	f.metaMock.EXPECT().GetAccountDailyInsights("123", gomock.Any()).Return([]metadomain.RawAdInsight{}, nil)
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(record, nil)

	f.resultRepo.EXPECT().
		SaveOrUpdate("123", gomock.Any()).
		DoAndReturn(func(_ string, result *domain.AnalysisResult) error {
			assert.Nil(t, result.Record.Metrics.ROAS)
			assert.True(t, result.Record.Sanitized)
			return nil
		})
	f.summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	f.runRepo.EXPECT().Save(gomock.Any()).Return(nil)

	_, err := f.service.RunForAccount("123", "NAM")
	require.NoError(t, err)
}

func TestRunForAccount_FalhaDePersistenciaNaoDerrubaExecucao(t *testing.T) {
	f := newPipelineFixture(t)

	f.eligibler.EXPECT().
		FilterEligibleAds("123", gomock.Any()).
		Return([]domain.EligibleAd{eligibleAd("ad1", 900.0)}, nil)

	f.metaMock.EXPECT().GetAccountDailyInsights("123", gomock.Any()).Return([]metadomain.RawAdInsight{}, nil)
	f.metaMock.EXPECT().GetAdRecord(gomock.Any(), gomock.Any()).Return(adRecord("ad1", 900.0), nil)

	f.resultRepo.EXPECT().SaveOrUpdate("123", gomock.Any()).Return(errors.New("banco indisponível"))
	f.summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("banco indisponível"))
	f.runRepo.EXPECT().Save(gomock.Any()).Return(errors.New("banco indisponível"))

	run, err := f.service.RunForAccount("123", "NAM")
	require.NoError(t, err)

	assert.Equal(t, 1, run.SuccessCount)
	assert.Equal(t, domain.RunStatusCompleted, run.Status)
}

func TestRunAll_SemContasConfiguradas(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Analysis: config.Analysis{DaysThreshold: 7, MinSpend: 250.0},
		Meta:     config.Meta{AccountsByRegion: map[string]string{}},
	}

	service := NewService(
		cfg,
		metamocks.NewMockIntegrator(ctrl),
		eligibilitymocks.NewMockEligibler(ctrl),
		analyzing.NewService(),
		validating.NewService(),
		sanitizing.NewService(),
		repomocks.NewMockAnalysisResultRepository(ctrl),
		repomocks.NewMockAnalysisRunRepository(ctrl),
		repomocks.NewMockDashboardSummaryRepository(ctrl),
		nil,
	)

	_, err := service.RunAll()
	assert.Error(t, err)
}

func TestRunAll_FalhaDeUmaContaNaoInterrompeAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Analysis: config.Analysis{DaysThreshold: 7, MinSpend: 250.0},
		Meta: config.Meta{AccountsByRegion: map[string]string{
			"EUR": "111",
			"NAM": "222",
		}},
	}

	metaMock := metamocks.NewMockIntegrator(ctrl)
	eligibler := eligibilitymocks.NewMockEligibler(ctrl)
	runRepo := repomocks.NewMockAnalysisRunRepository(ctrl)
	summaryRepo := repomocks.NewMockDashboardSummaryRepository(ctrl)

	service := NewService(
		cfg,
		metaMock,
		eligibler,
		analyzing.NewService(),
		validating.NewService(),
		sanitizing.NewService(),
		repomocks.NewMockAnalysisResultRepository(ctrl),
		runRepo,
		summaryRepo,
		nil,
	)

	// A conta da Europa falha na elegibilidade; a norte-americana completa.
	eligibler.EXPECT().FilterEligibleAds("111", gomock.Any()).Return(nil, errors.New("api indisponível"))
	eligibler.EXPECT().FilterEligibleAds("222", gomock.Any()).Return([]domain.EligibleAd{}, nil)

	metaMock.EXPECT().GetAccountDailyInsights("222", gomock.Any()).Return([]metadomain.RawAdInsight{}, nil)
	summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	runRepo.EXPECT().Save(gomock.Any()).Return(nil)

	runs, err := service.RunAll()
	require.NoError(t, err)

	require.Len(t, runs, 1)
	assert.Equal(t, "222", runs[0].AccountID)
	assert.Equal(t, "NAM", runs[0].Region)
}
