package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRefresher) EnsureValidToken(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

func newTestSyncService(t *testing.T, profileIDs []string, maxConcurrent int) (*InstagramSyncService, *mocks.MockSyncer, *fakeRefresher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)
	refresher := &fakeRefresher{}

	cfg := &config.Config{}
	cfg.InstagramSync.CronSchedule = "0 4 * * *"
	cfg.InstagramSync.ProfileIDs = profileIDs
	cfg.InstagramSync.MaxConcurrentJobs = maxConcurrent
	cfg.InstagramSync.RequestDelaySeconds = 1

	service := NewInstagramSyncService(syncer, refresher, cfg)
	service.sleep = func(time.Duration) {}
	return service, syncer, refresher
}

func TestInstagramSyncService_syncAll(t *testing.T) {
	tests := []struct {
		name         string
		profileIDs   []string
		setup        func(syncer *mocks.MockSyncer)
		wantSynced   int
		wantErrCount int
	}{
		{
			name:       "Todos os perfis com sucesso - deve sincronizar contas e posts",
			profileIDs: []string{"p1", "p2", "p3"},
			setup: func(syncer *mocks.MockSyncer) {
				syncer.EXPECT().SyncAccount(gomock.Any(), gomock.Any()).Return(&syncing.AccountSyncResult{OK: true}, nil).Times(3)
				syncer.EXPECT().SyncPosts(gomock.Any()).Return(&syncing.PostsSyncResult{OK: true}, nil)
			},
			wantSynced: 3,
		},
		{
			name:       "Falha em um perfil - deve continuar com os demais",
			profileIDs: []string{"p1", "p2"},
			setup: func(syncer *mocks.MockSyncer) {
				syncer.EXPECT().SyncAccount(gomock.Any(), "p1").Return(nil, errors.New("GRAPH 400"))
				syncer.EXPECT().SyncAccount(gomock.Any(), "p2").Return(&syncing.AccountSyncResult{OK: true}, nil)
				syncer.EXPECT().SyncPosts(gomock.Any()).Return(&syncing.PostsSyncResult{OK: true}, nil)
			},
			wantSynced:   1,
			wantErrCount: 1,
		},
		{
			name:       "Sem perfis configurados - sincroniza apenas os posts",
			profileIDs: nil,
			setup: func(syncer *mocks.MockSyncer) {
				syncer.EXPECT().SyncPosts(gomock.Any()).Return(nil, errors.New("conta não encontrada"))
			},
			wantErrCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, syncer, refresher := newTestSyncService(t, tt.profileIDs, 2)
			tt.setup(syncer)

			service.syncAll(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantSynced, status["last_accounts_synced"])
			assert.Len(t, status["last_errors"], tt.wantErrCount)
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, int32(1), refresher.calls.Load())
		})
	}
}

func TestInstagramSyncService_RespectsConcurrencyLimit(t *testing.T) {
	service, syncer, _ := newTestSyncService(t, []string{"p1", "p2", "p3", "p4", "p5"}, 2)

	var current, peak atomic.Int32
	syncer.EXPECT().
		SyncAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, profileID string) (*syncing.AccountSyncResult, error) {
			n := current.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			current.Add(-1)
			return &syncing.AccountSyncResult{OK: true}, nil
		}).Times(5)
	syncer.EXPECT().SyncPosts(gomock.Any()).Return(&syncing.PostsSyncResult{OK: true}, nil)

	service.syncAll(context.Background())

	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, 5, service.GetStatus()["last_accounts_synced"])
}

func TestInstagramSyncService_SkipsWhenRunning(t *testing.T) {
	service, _, refresher := newTestSyncService(t, []string{"p1"}, 1)
	service.syncRunning = true

	service.syncAll(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))

	assert.Equal(t, int32(0), refresher.calls.Load())
}

func TestInstagramSyncService_StartDisabled(t *testing.T) {
	service, _, _ := newTestSyncService(t, nil, 1)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
