package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/api"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/scheduler"
	"github.com/vfg2006/influencer-hub-api/internal/search"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/campaigning"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.SetEnvironment(cfg.App.Env)

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
	accountRepo := repository.NewAccountRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	syncRunRepo := repository.NewSyncRunRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	searcher := searching.NewService(accountRepo, campaignRepo, search.NewSessionStore())
	campaigner := campaigning.NewService(campaignRepo, accountRepo)

	tokenManager := igclient.NewTokenManager(cfg, &http.Client{Timeout: 30 * time.Second})
	go tokenManager.StartAutoRefresh(ctx)

	igClient := igclient.NewClient(cfg, tokenManager)
	igIntegrator := instagram.New(cfg, igClient)

	syncer := syncing.NewService(igIntegrator, accountRepo, metricRepo, postRepo, syncRunRepo, cfg)

	instagramSyncService := scheduler.NewInstagramSyncService(syncer, tokenManager, cfg)
	if err := instagramSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Instagram")
	} else {
		logrus.Info("Agendador de sincronização do Instagram iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		searcher,
		campaigner,
		syncer,
		instagramSyncService,
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
