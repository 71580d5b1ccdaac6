package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/infrastructure/export"
	"github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta"
	"github.com/vfg2006/creative-analysis-api/infrastructure/repository"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/eligibility"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/sanitizing"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/validating"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

// Quantidade de destaques em cada ponta do resumo do dashboard.
const performersSize = 5

// Runner executa o pipeline de análise de criativos de ponta a ponta para uma
// conta ou para todas as contas configuradas.
type Runner interface {
	RunForAccount(accountID, region string) (*domain.RunStats, error)
	RunAll() ([]*domain.RunStats, error)
}

type Service struct {
	cfg         *config.Config
	metaService meta.Integrator
	eligibler   eligibility.Eligibler
	analyzer    analyzing.Analyzer
	validator   validating.Validator
	sanitizer   sanitizing.Sanitizer
	resultRepo  repository.AnalysisResultRepository
	runRepo     repository.AnalysisRunRepository
	summaryRepo repository.DashboardSummaryRepository
	exporter    export.Exporter
}

func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	eligibler eligibility.Eligibler,
	analyzer analyzing.Analyzer,
	validator validating.Validator,
	sanitizer sanitizing.Sanitizer,
	resultRepo repository.AnalysisResultRepository,
	runRepo repository.AnalysisRunRepository,
	summaryRepo repository.DashboardSummaryRepository,
	exporter export.Exporter,
) Runner {
	return &Service{
		cfg:         cfg,
		metaService: metaService,
		eligibler:   eligibler,
		analyzer:    analyzer,
		validator:   validator,
		sanitizer:   sanitizer,
		resultRepo:  resultRepo,
		runRepo:     runRepo,
		summaryRepo: summaryRepo,
		exporter:    exporter,
	}
}

// RunAll executa o pipeline para cada conta configurada por região, uma de
// cada vez para não disputar o orçamento de requisições da API. Falha em uma
// conta não interrompe as demais.
func (s *Service) RunAll() ([]*domain.RunStats, error) {
	if len(s.cfg.Meta.AccountsByRegion) == 0 {
		return nil, fmt.Errorf("nenhuma conta de anúncio configurada")
	}

	runs := make([]*domain.RunStats, 0, len(s.cfg.Meta.AccountsByRegion))
	for _, region := range config.Regions {
		accountID, ok := s.cfg.Meta.AccountsByRegion[region]
		if !ok {
			continue
		}

		run, err := s.RunForAccount(accountID, region)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"region":     region,
				"error":      err.Error(),
			}).Error("pipeline: falha na execução da conta, seguindo para a próxima")
			continue
		}

		runs = append(runs, run)
	}

	return runs, nil
}

// RunForAccount roda o pipeline completo de uma conta: elegibilidade,
// benchmarks, extração, validação, análise, sanitização e persistência.
// Falha em um anúncio conta como erro da execução sem derrubar os demais.
func (s *Service) RunForAccount(accountID, region string) (*domain.RunStats, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador da execução: %w", err)
	}

	run := &domain.RunStats{
		RunID:     runID,
		AccountID: accountID,
		Region:    region,
		StartedAt: time.Now(),
		Status:    domain.RunStatusFailed,
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"account_id": accountID,
		"region":     region,
	}).Info("pipeline: iniciando execução")

	filters := s.analysisWindow()
	if err := s.validator.ValidateFilters(filters); err != nil {
		return nil, fmt.Errorf("janela de análise inválida: %w", err)
	}

	eligibleAds, err := s.eligibler.FilterEligibleAds(accountID, domain.EligibilityFilters{
		DaysThreshold: s.cfg.Analysis.DaysThreshold,
		MinSpend:      s.cfg.Analysis.MinSpend,
	})
	if err != nil {
		return nil, fmt.Errorf("erro no filtro de elegibilidade: %w", err)
	}

	run.AdCount = len(eligibleAds)
	benchmarks := s.computeBenchmarks(accountID, filters)
	analysisDate := time.Now().Format(time.DateOnly)

	results := make([]*domain.AnalysisResult, 0, len(eligibleAds))
	for _, eligibleAd := range eligibleAds {
		result, err := s.analyzeAd(eligibleAd, filters, benchmarks, analysisDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"ad_id":  eligibleAd.ID,
				"error":  err.Error(),
			}).Warn("pipeline: anúncio descartado da execução")
			run.ErrorCount++
			continue
		}

		if saveErr := s.resultRepo.SaveOrUpdate(accountID, result); saveErr != nil {
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"ad_id":  eligibleAd.ID,
				"error":  saveErr.Error(),
			}).Warn("pipeline: erro ao persistir resultado, análise segue em memória")
		}

		results = append(results, result)
		run.SuccessCount++
	}

	summary := s.buildSummary(accountID, analysisDate, results)
	if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Warn("pipeline: erro ao persistir resumo do dashboard")
	}

	if s.cfg.Analysis.ExportEnabled && s.exporter != nil {
		if _, err := s.exporter.ExportAnalysis(accountID, analysisDate, results, summary); err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"error":  err.Error(),
			}).Warn("pipeline: erro ao exportar análise para arquivo")
		}
	}

	run.Duration = time.Since(run.StartedAt)
	run.Status = runStatus(run)

	if err := s.runRepo.Save(run); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Warn("pipeline: erro ao persistir estatísticas da execução")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"ads":      run.AdCount,
		"success":  run.SuccessCount,
		"errors":   run.ErrorCount,
		"status":   run.Status,
		"duration": run.Duration.String(),
	}).Info("pipeline: execução concluída")

	return run, nil
}

// analyzeAd monta e analisa o registro de um anúncio. O veredito de validação
// com problemas descarta o anúncio; as anomalias apenas acompanham o
// resultado.
func (s *Service) analyzeAd(
	eligibleAd domain.EligibleAd,
	filters *domain.InsigthFilters,
	benchmarks *domain.BenchmarkSet,
	analysisDate string,
) (*domain.AnalysisResult, error) {
	record, err := s.metaService.GetAdRecord(eligibleAd.Ad, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o registro do anúncio: %w", err)
	}

	validation := s.validator.ValidateRecord(record, s.cfg.Analysis.MinSpend)
	if !validation.Valid {
		return nil, fmt.Errorf("registro inválido: %s", validation.Issues[0].Message)
	}

	comparison := s.analyzer.CompareWithBenchmarks(record.Metrics, benchmarks)
	segments := s.analyzer.AnalyzeSegments(record, benchmarks)

	// A sanitização vem por último: a comparação ainda usa campos que ela
	// remove.
	s.sanitizer.SanitizeRecord(record)

	return &domain.AnalysisResult{
		Record:       *record,
		Comparison:   comparison,
		Segments:     segments,
		Anomalies:    validation.Anomalies,
		AnalysisDate: analysisDate,
	}, nil
}

// computeBenchmarks busca os insights diários da conta e agrega as
// referências. Sem dados, a análise segue com o conjunto vazio.
func (s *Service) computeBenchmarks(accountID string, filters *domain.InsigthFilters) *domain.BenchmarkSet {
	days, err := s.metaService.GetAccountDailyInsights(accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("pipeline: erro ao obter insights da conta, análise sem benchmarks")
		return s.analyzer.ComputeBenchmarks(nil)
	}

	return s.analyzer.ComputeBenchmarks(days)
}

// buildSummary consolida a execução no resumo do dashboard, com os cinco
// melhores e piores anúncios por nota.
func (s *Service) buildSummary(accountID, analysisDate string, results []*domain.AnalysisResult) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		Date:             analysisDate,
		AccountID:        accountID,
		AdsAnalyzed:      len(results),
		TopPerformers:    []domain.PerformerSummary{},
		BottomPerformers: []domain.PerformerSummary{},
	}

	if len(results) == 0 {
		return summary
	}

	performers := make([]domain.PerformerSummary, 0, len(results))
	totalScore := 0.0
	for _, result := range results {
		totalScore += result.Comparison.Score
		performers = append(performers, domain.PerformerSummary{
			AdID:   result.Record.Ad.ID,
			AdName: result.Record.Ad.Name,
			Score:  result.Comparison.Score,
			Rating: result.Comparison.Rating,
		})
	}

	summary.AvgScore = utils.RoundWithTwoDecimalPlace(totalScore / float64(len(results)))

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].Score > performers[j].Score
	})

	for i := 0; i < len(performers) && i < performersSize; i++ {
		summary.TopPerformers = append(summary.TopPerformers, performers[i])
	}
	for i := len(performers) - 1; i >= 0 && len(summary.BottomPerformers) < performersSize; i-- {
		summary.BottomPerformers = append(summary.BottomPerformers, performers[i])
	}

	return summary
}

// analysisWindow monta o período da análise: termina ontem e cobre a mesma
// quantidade de dias do filtro de elegibilidade.
func (s *Service) analysisWindow() *domain.InsigthFilters {
	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -(s.cfg.Analysis.DaysThreshold - 1))

	return &domain.InsigthFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}
}

func runStatus(run *domain.RunStats) string {
	switch {
	case run.ErrorCount == 0:
		return domain.RunStatusCompleted
	case run.SuccessCount > 0:
		return domain.RunStatusPartial
	default:
		return domain.RunStatusFailed
	}
}
