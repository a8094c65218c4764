package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads/adsclient"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/bedrock"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ga"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ga/gaclient"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/api"
	"github.com/vfg2006/marketing-intelligence-api/internal/cache"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/scheduler"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/account"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/narrating"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/planning"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	planningRepo := repository.NewPlanningRepository(pgConn)
	skuExtrasRepo := repository.NewSkuExtrasRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := ads.New(cfg, adsClient, skuExtrasRepo).
		WithCache(cache.NewTTLStore(cfg.Ads.CacheTTL))

	gaClient := gaclient.NewClient(cfg)
	gaIntegrator := ga.New(cfg, gaClient).
		WithCache(cache.NewTTLStore(cfg.Analytics.CacheTTL))

	accountService := account.NewService(accountRepo, adsIntegrator, gaIntegrator)

	// Motor de análise com persistência assíncrona de insights e fotografias
	analyzer := analyzing.NewService(adsIntegrator, gaIntegrator, accountRepo).
		WithSink(repository.NewInsightSink(insightRepo, snapshotRepo))

	planner := planning.NewService(planningRepo)

	narrator := newNarrator(ctx, cfg)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		accountRepo,
		snapshotRepo,
		adsIntegrator,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografias diárias")
	} else {
		logrus.Info("Agendador de fotografias diárias iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		accountService,
		planner,
		narrator,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newNarrator monta o narrador de insights quando habilitado por configuração
func newNarrator(ctx context.Context, cfg *config.Config) narrating.Narrator {
	if !cfg.Narrator.Enabled {
		logrus.Info("Narrador de insights desabilitado por configuração")
		return nil
	}

	narrator, err := bedrock.NewNarrator(ctx, bedrock.Config{
		Region:    cfg.Narrator.Region,
		ModelID:   cfg.Narrator.ModelID,
		MaxTokens: cfg.Narrator.MaxTokens,
		Enabled:   cfg.Narrator.Enabled,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar o narrador de insights, seguindo sem narrativas")
		return nil
	}

	logrus.WithField("model_id", cfg.Narrator.ModelID).Info("Narrador de insights inicializado")
	return narrator
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
