package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/creative-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	pipelinemocks "github.com/vfg2006/creative-analysis-api/internal/usecases/pipeline/mocks"
	"go.uber.org/mock/gomock"
)

func TestAnalysisSyncService_runAnalysis(t *testing.T) {
	tests := []struct {
		name     string
		config   AnalysisSyncConfig
		setup    func(runner *pipelinemocks.MockRunner, resultRepo *repomocks.MockAnalysisResultRepository)
		validate func(t *testing.T, service *AnalysisSyncService)
	}{
		{
			name: "Execução completa - roda o pipeline e aplica a retenção",
			config: AnalysisSyncConfig{
				RetentionDays: 90,
				SyncEnabled:   true,
			},
			setup: func(runner *pipelinemocks.MockRunner, resultRepo *repomocks.MockAnalysisResultRepository) {
				runner.EXPECT().
					RunAll().
					Return([]*domain.RunStats{
						{RunID: "abc123", AccountID: "act_1", Status: domain.RunStatusCompleted},
					}, nil)

				resultRepo.EXPECT().
					DeleteOlderThan(90).
					Return(int64(12), nil)
			},
			validate: func(t *testing.T, service *AnalysisSyncService) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Erro no pipeline - não aplica retenção nem marca conclusão",
			config: AnalysisSyncConfig{
				RetentionDays: 90,
				SyncEnabled:   true,
			},
			setup: func(runner *pipelinemocks.MockRunner, resultRepo *repomocks.MockAnalysisResultRepository) {
				runner.EXPECT().
					RunAll().
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, service *AnalysisSyncService) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.True(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Retenção desabilitada - não remove resultados antigos",
			config: AnalysisSyncConfig{
				RetentionDays: 0,
				SyncEnabled:   true,
			},
			setup: func(runner *pipelinemocks.MockRunner, resultRepo *repomocks.MockAnalysisResultRepository) {
				runner.EXPECT().
					RunAll().
					Return([]*domain.RunStats{}, nil)
			},
			validate: func(t *testing.T, service *AnalysisSyncService) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Erro na retenção - execução ainda é concluída",
			config: AnalysisSyncConfig{
				RetentionDays: 30,
				SyncEnabled:   true,
			},
			setup: func(runner *pipelinemocks.MockRunner, resultRepo *repomocks.MockAnalysisResultRepository) {
				runner.EXPECT().
					RunAll().
					Return([]*domain.RunStats{}, nil)

				resultRepo.EXPECT().
					DeleteOlderThan(30).
					Return(int64(0), assert.AnError)
			},
			validate: func(t *testing.T, service *AnalysisSyncService) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := pipelinemocks.NewMockRunner(ctrl)
			mockResultRepo := repomocks.NewMockAnalysisResultRepository(ctrl)

			tt.setup(mockRunner, mockResultRepo)

			service := &AnalysisSyncService{
				config:     tt.config,
				appConfig:  &config.Config{},
				runner:     mockRunner,
				resultRepo: mockResultRepo,
			}

			service.runAnalysis()

			tt.validate(t, service)
		})
	}
}

func TestAnalysisSyncService_runAnalysis_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa: com a execução em andamento, o pipeline não deve
	// ser chamado de novo
	mockRunner := pipelinemocks.NewMockRunner(ctrl)
	mockResultRepo := repomocks.NewMockAnalysisResultRepository(ctrl)

	service := &AnalysisSyncService{
		config:      AnalysisSyncConfig{RetentionDays: 90, SyncEnabled: true},
		appConfig:   &config.Config{},
		runner:      mockRunner,
		resultRepo:  mockResultRepo,
		syncRunning: true,
	}

	service.runAnalysis()

	assert.True(t, service.syncRunning)
	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestAnalysisSyncService_Start_Disabled(t *testing.T) {
	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{SyncEnabled: false},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestAnalysisSyncService_GetStatus(t *testing.T) {
	startedAt := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(42 * time.Minute)

	appConfig := &config.Config{}
	appConfig.Meta.AccountsByRegion = map[string]string{
		"EUR": "act_111",
		"NAM": "act_222",
	}

	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 90,
			SyncEnabled:   true,
		},
		appConfig:           appConfig,
		lastSyncStartedAt:   startedAt,
		lastSyncCompletedAt: completedAt,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 90, status["retention_days"])
	assert.Equal(t, 2, status["accounts_configured"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
	assert.Equal(t, completedAt, status["last_sync_completed_at"])
}
