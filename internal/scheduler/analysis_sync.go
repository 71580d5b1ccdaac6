package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/infrastructure/repository"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/pipeline"
)

// AnalysisSyncConfig representa a configuração do agendador de análises
type AnalysisSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// AnalysisSyncService gerencia o agendamento e execução do pipeline diário de
// análise de criativos
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	appConfig           *config.Config
	runner              pipeline.Runner
	resultRepo          repository.AnalysisResultRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalysisSyncService cria uma nova instância do serviço de sincronização
// de análises
func NewAnalysisSyncService(
	runner pipeline.Runner,
	resultRepo repository.AnalysisResultRepository,
	appConfig *config.Config,
) *AnalysisSyncService {
	syncConfig := AnalysisSyncConfig{
		CronSchedule:  appConfig.AnalysisSync.CronSchedule,
		RetentionDays: appConfig.Analysis.RetentionDays,
		SyncEnabled:   appConfig.AnalysisSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de análises carregada")

	return &AnalysisSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		appConfig:  appConfig,
		runner:     runner,
		resultRepo: resultRepo,
	}
}

// Start inicia o agendador
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de análises desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análises de criativos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAnalysis()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização de análises: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análises de criativos")
		s.scheduler.Stop()
	}()

	return nil
}

// runAnalysis executa o pipeline para todas as contas configuradas e aplica a
// política de retenção dos resultados
func (s *AnalysisSyncService) runAnalysis() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de análises já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando análise de criativos para todas as contas configuradas")

	runs, err := s.runner.RunAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o pipeline de análise")
		return
	}

	s.applyRetention()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(runs),
	}).Info("Análise de criativos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// applyRetention remove do banco os resultados mais antigos que a janela de
// retenção configurada
func (s *AnalysisSyncService) applyRetention() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.resultRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar a retenção de resultados de análise")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Resultados antigos de análise removidos")
	}
}

// TriggerManualSync inicia manualmente uma execução do pipeline de análise
func (s *AnalysisSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de análises já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de análises")
	go s.runAnalysis()
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"accounts_configured":    len(s.appConfig.Meta.AccountsByRegion),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
