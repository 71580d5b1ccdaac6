package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-analysis-api/infrastructure/export"
	"github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta"
	"github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-analysis-api/infrastructure/repository"
	"github.com/vfg2006/creative-analysis-api/internal/api"
	"github.com/vfg2006/creative-analysis-api/internal/config"
	"github.com/vfg2006/creative-analysis-api/internal/scheduler"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/eligibility"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/extracting"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/pipeline"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/sanitizing"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/validating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	resultRepo := repository.NewAnalysisResultRepository(pgConn)
	runRepo := repository.NewAnalysisRunRepository(pgConn)
	summaryRepo := repository.NewDashboardSummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	renderClient := config.NewRenderClient(cfg)

	tokenManager := metaclient.NewTokenManager(cfg, renderClient)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)

	extractor := extracting.NewService()
	metaIntegrator := meta.New(cfg, metaClient, extractor)

	eligibler := eligibility.NewService(metaIntegrator)
	analyzer := analyzing.NewService()
	validator := validating.NewService()
	sanitizer := sanitizing.NewService()
	exporter := export.NewFileExporter(cfg.Analysis.ExportDir)

	runner := pipeline.NewService(
		cfg,
		metaIntegrator,
		eligibler,
		analyzer,
		validator,
		sanitizer,
		resultRepo,
		runRepo,
		summaryRepo,
		exporter,
	)

	analysisSyncService := scheduler.NewAnalysisSyncService(runner, resultRepo, cfg)

	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análises de criativos")
	} else {
		logrus.Info("Agendador de análises de criativos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		resultRepo,
		summaryRepo,
		runRepo,
		analysisSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
