package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"golang.org/x/sync/semaphore"
)

// TokenRefresher renova o token longo do Instagram antes das execuções agendadas
type TokenRefresher interface {
	EnsureValidToken(ctx context.Context) error
}

// InstagramSyncConfig representa a configuração do agendador do Instagram
type InstagramSyncConfig struct {
	CronSchedule        string
	ProfileIDs          []string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// InstagramSyncService agenda a sincronização das contas configuradas e dos posts
type InstagramSyncService struct {
	scheduler *gocron.Scheduler
	config    InstagramSyncConfig
	syncer    syncing.Syncer
	tokens    TokenRefresher
	sleep     func(time.Duration)

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastAccountsSynced  int
	lastErrors          []string
}

func NewInstagramSyncService(syncer syncing.Syncer, tokens TokenRefresher, appConfig *config.Config) *InstagramSyncService {
	syncConfig := InstagramSyncConfig{
		CronSchedule:        appConfig.InstagramSync.CronSchedule,
		ProfileIDs:          appConfig.InstagramSync.ProfileIDs,
		RequestDelaySeconds: appConfig.InstagramSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.InstagramSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.InstagramSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"profiles":              len(syncConfig.ProfileIDs),
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do Instagram carregada")

	return &InstagramSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		syncer:    syncer,
		tokens:    tokens,
		sleep:     time.Sleep,
	}
}

// Start inicia o agendador
func (s *InstagramSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do Instagram desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do Instagram")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Instagram: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Instagram")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAll sincroniza as contas configuradas e depois os posts da conta business.
// Nunca roda duas vezes ao mesmo tempo.
func (s *InstagramSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Instagram já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	var (
		errs   []string
		synced int
	)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastAccountsSynced = synced
		s.lastErrors = errs
		s.syncMutex.Unlock()
	}()

	if s.tokens != nil {
		if err := s.tokens.EnsureValidToken(ctx); err != nil {
			logrus.WithError(err).Warn("Não foi possível validar o token do Instagram, seguindo com o token atual")
		}
	}

	if len(s.config.ProfileIDs) == 0 {
		logrus.Info("Nenhum profile_id configurado para sincronização do Instagram")
	}

	synced, errs = s.syncAccounts(ctx)

	if _, err := s.syncer.SyncPosts(ctx); err != nil {
		errs = append(errs, fmt.Sprintf("posts: %v", err))
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": synced,
		"errors":   len(errs),
	}).Info("Sincronização do Instagram concluída")
}

// syncAccounts processa os perfis com no máximo MaxConcurrentJobs em paralelo
func (s *InstagramSyncService) syncAccounts(ctx context.Context) (int, []string) {
	sem := semaphore.NewWeighted(int64(s.config.MaxConcurrentJobs))
	delay := time.Duration(s.config.RequestDelaySeconds) * time.Second

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		synced int
		errs   []string
	)

	for _, profileID := range s.config.ProfileIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Sprintf("%s: %v", profileID, err))
			mu.Unlock()
			break
		}

		wg.Add(1)
		go func(profileID string) {
			defer func() {
				sem.Release(1)
				wg.Done()
			}()

			_, err := s.syncer.SyncAccount(ctx, profileID)

			mu.Lock()
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", profileID, err))
			} else {
				synced++
			}
			mu.Unlock()

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			if delay > 0 {
				s.sleep(delay)
			}
		}(profileID)
	}

	wg.Wait()
	return synced, errs
}

// TriggerManualSync inicia uma sincronização fora do agendamento.
// Retorna false quando já existe uma em andamento.
func (s *InstagramSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização do Instagram já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual do Instagram")
	go s.syncAll(ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *InstagramSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_profiles":          len(s.config.ProfileIDs),
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_accounts_synced":   s.lastAccountsSynced,
		"last_errors":            s.lastErrors,
	}
}
