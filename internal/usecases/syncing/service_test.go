package syncing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igdomain"
	repomocks "github.com/vfg2006/influencer-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const placeholder = "https://exemplo.com/placeholder.png"

type testDeps struct {
	source   *mocks.MockInstagramSource
	accounts *repomocks.MockAccountRepository
	metrics  *repomocks.MockMetricRepository
	posts    *repomocks.MockPostRepository
	runs     *repomocks.MockSyncRunRepository
}

func newTestService(t *testing.T) (*syncing.Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		source:   mocks.NewMockInstagramSource(ctrl),
		accounts: repomocks.NewMockAccountRepository(ctrl),
		metrics:  repomocks.NewMockMetricRepository(ctrl),
		posts:    repomocks.NewMockPostRepository(ctrl),
		runs:     repomocks.NewMockSyncRunRepository(ctrl),
	}

	cfg := &config.Config{}
	cfg.Instagram.Platform = domain.PlatformInstagram
	cfg.Instagram.PlaceholderImageURL = placeholder

	service := syncing.NewService(deps.source, deps.accounts, deps.metrics, deps.posts, deps.runs, cfg)
	return service, deps
}

// expectRun registra início, etapas e fim esperados de uma execução
func expectRun(deps testDeps, kind, target string, status domain.SyncRunStatus) {
	deps.runs.EXPECT().Start(gomock.Any(), kind, target).Return(&domain.SyncRun{ID: "run1", Kind: kind, Target: target}, nil)
	deps.runs.EXPECT().Checkpoint(gomock.Any(), "run1", gomock.Any()).Return(nil).AnyTimes()
	deps.runs.EXPECT().Finish(gomock.Any(), "run1", status, gomock.Any()).Return(nil)
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func isStartOfDayUTC(t time.Time) bool {
	return t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func TestService_SyncAccount_RequiresProfileID(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.SyncAccount(context.Background(), "  ")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, syncing.ErrProfileIDRequired)
}

func TestService_SyncAccount(t *testing.T) {
	service, deps := newTestService(t)
	expectRun(deps, syncing.KindInstagramAccount, "p1", domain.SyncRunStatusSucceeded)

	deps.source.EXPECT().FetchAccountProfile(gomock.Any()).Return(&instagram.AccountProfile{
		IgUserID:     "1789",
		Username:     "ana.moda",
		Name:         "Ana",
		Biography:    strPtr("moda e viagem"),
		Posts:        int64Ptr(120),
		Followers:    int64Ptr(5400),
		Following:    int64Ptr(300),
		ProfileViews: nil,
	}, nil)

	deps.accounts.EXPECT().GetByProfileID(gomock.Any(), domain.PlatformInstagram, "p1").Return(&domain.Account{
		ID:       "acc1",
		Gender:   strPtr("female"),
		Keywords: strPtr("moda, viagem"),
		Country:  strPtr("BR"),
	}, nil)

	deps.accounts.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.Account) (string, error) {
			assert.Equal(t, "ana.moda", account.AccountName)
			assert.Equal(t, "https://www.instagram.com/ana.moda/", *account.AccountURL)
			assert.Equal(t, placeholder, *account.ProfileImageURL)
			assert.Equal(t, "1789", *account.PlatformProfileID)
			assert.Equal(t, "p1", *account.ProfileID)
			assert.True(t, account.BusinessAccount)
			assert.Equal(t, "female", *account.Gender, "campo curado deve ser mantido")
			assert.Equal(t, "moda, viagem", *account.Keywords)
			assert.Equal(t, "BR", *account.Country)
			return "acc1", nil
		})

	deps.metrics.EXPECT().
		UpsertSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.MetricSnapshot) error {
			assert.Equal(t, "acc1", snapshot.AccountID)
			assert.Equal(t, int64(5400), *snapshot.Followers)
			assert.Nil(t, snapshot.ProfileViews)
			assert.Nil(t, snapshot.MaximumLikes)
			assert.True(t, isStartOfDayUTC(snapshot.MetricDate))
			return nil
		})

	result, err := service.SyncAccount(context.Background(), " p1 ")

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "acc1", result.AccountID)
	assert.Equal(t, "1789", result.PlatformProfileID)
}

func TestService_SyncAccount_NameFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		profile  instagram.AccountProfile
		wantName string
		wantURL  bool
	}{
		{"Sem username - usa o nome", instagram.AccountProfile{IgUserID: "1", Name: "Ana"}, "Ana", false},
		{"Sem username e nome - usa o ID", instagram.AccountProfile{IgUserID: "1"}, "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			expectRun(deps, syncing.KindInstagramAccount, "p1", domain.SyncRunStatusSucceeded)

			profile := tt.profile
			deps.source.EXPECT().FetchAccountProfile(gomock.Any()).Return(&profile, nil)
			deps.accounts.EXPECT().GetByProfileID(gomock.Any(), domain.PlatformInstagram, "p1").Return(nil, nil)
			deps.accounts.EXPECT().
				Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, account *domain.Account) (string, error) {
					assert.Equal(t, tt.wantName, account.AccountName)
					assert.Equal(t, tt.wantURL, account.AccountURL != nil)
					assert.Nil(t, account.Gender)
					return "acc1", nil
				})
			deps.metrics.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

			_, err := service.SyncAccount(context.Background(), "p1")
			require.NoError(t, err)
		})
	}
}

func TestService_SyncAccount_GraphFailure(t *testing.T) {
	service, deps := newTestService(t)
	expectRun(deps, syncing.KindInstagramAccount, "p1", domain.SyncRunStatusFailed)

	deps.source.EXPECT().FetchAccountProfile(gomock.Any()).Return(nil, errors.New("GRAPH 400"))

	result, err := service.SyncAccount(context.Background(), "p1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, syncing.ErrGraphAPI)

	var syncErr *syncing.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, apiErrors.ErrExternalService, syncErr.Code)
}

func rankedMedia(id string, mediaType domain.MediaType, likes *int64, views *int64, hashtags ...string) instagram.RankedMedia {
	return instagram.RankedMedia{
		Media: igdomain.Media{
			ID:            id,
			Caption:       strPtr("legenda " + id),
			LikeCount:     likes,
			CommentsCount: int64Ptr(2),
		},
		Type:     mediaType,
		Views:    views,
		Hashtags: hashtags,
	}
}

func TestService_SyncPosts(t *testing.T) {
	service, deps := newTestService(t)
	expectRun(deps, syncing.KindInstagramPosts, "business_account", domain.SyncRunStatusSucceeded)

	top := []instagram.RankedMedia{
		rankedMedia("m1", domain.MediaTypeReels, int64Ptr(300), int64Ptr(9000), "moda", "verão"),
		rankedMedia("m2", domain.MediaTypeImage, int64Ptr(800), nil),
		rankedMedia("m3", domain.MediaTypeVideo, nil, int64Ptr(10)),
	}
	deps.source.EXPECT().FetchTopMedia(gomock.Any()).Return("1789", top, nil)
	deps.accounts.EXPECT().GetByPlatformProfileID(gomock.Any(), domain.PlatformInstagram, "1789").Return(&domain.Account{ID: "acc1"}, nil)

	nextID := int64(0)
	deps.posts.EXPECT().
		UpsertPost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, post *domain.Post) (int64, error) {
			assert.Equal(t, "acc1", post.AccountID)
			nextID++
			return nextID, nil
		}).Times(3)

	deps.posts.EXPECT().
		UpsertMetrics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, metric domain.PostMetric) error {
			if metric.PostID == 3 {
				assert.Zero(t, metric.Likes, "likes desconhecidos gravam zero")
			}
			assert.True(t, isStartOfDayUTC(metric.MetricDate))
			return nil
		}).Times(3)

	deps.posts.EXPECT().UpsertHashtag(gomock.Any(), "moda").Return(int64(10), nil)
	deps.posts.EXPECT().UpsertHashtag(gomock.Any(), "verão").Return(int64(11), nil)
	deps.posts.EXPECT().LinkHashtag(gomock.Any(), int64(1), int64(10)).Return(nil)
	deps.posts.EXPECT().LinkHashtag(gomock.Any(), int64(1), int64(11)).Return(nil)

	deps.metrics.EXPECT().UpdateDailyAggregates(gomock.Any(), "acc1", gomock.Any(), int64(800), int64(2)).Return(true, nil)

	result, err := service.SyncPosts(context.Background())

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 3, result.TopPostsSynced)
	assert.True(t, result.AggregatesUpdated)
}

func TestService_SyncPosts_WithoutDailySnapshot(t *testing.T) {
	service, deps := newTestService(t)
	expectRun(deps, syncing.KindInstagramPosts, "business_account", domain.SyncRunStatusSucceeded)

	top := []instagram.RankedMedia{rankedMedia("m1", domain.MediaTypeImage, int64Ptr(120), nil)}
	deps.source.EXPECT().FetchTopMedia(gomock.Any()).Return("1789", top, nil)
	deps.accounts.EXPECT().GetByPlatformProfileID(gomock.Any(), domain.PlatformInstagram, "1789").Return(&domain.Account{ID: "acc1"}, nil)
	deps.posts.EXPECT().UpsertPost(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	deps.posts.EXPECT().UpsertMetrics(gomock.Any(), gomock.Any()).Return(nil)

	// Nenhum snapshot é criado: só a atualização do dia, que não encontra linha
	deps.metrics.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Times(0)
	deps.metrics.EXPECT().UpdateDailyAggregates(gomock.Any(), "acc1", gomock.Any(), int64(120), int64(0)).Return(false, nil)

	result, err := service.SyncPosts(context.Background())

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 1, result.TopPostsSynced)
	assert.False(t, result.AggregatesUpdated)
}

func TestService_SyncPosts_AccountNotSynced(t *testing.T) {
	service, deps := newTestService(t)
	expectRun(deps, syncing.KindInstagramPosts, "business_account", domain.SyncRunStatusFailed)

	deps.source.EXPECT().FetchTopMedia(gomock.Any()).Return("1789", nil, nil)
	deps.accounts.EXPECT().GetByPlatformProfileID(gomock.Any(), domain.PlatformInstagram, "1789").Return(nil, nil)

	_, err := service.SyncPosts(context.Background())

	assert.ErrorIs(t, err, syncing.ErrAccountNotSynced)
}

func TestService_SyncPosts_RunNotStarted(t *testing.T) {
	service, deps := newTestService(t)
	deps.runs.EXPECT().Start(gomock.Any(), syncing.KindInstagramPosts, "business_account").Return(nil, errors.New("sem conexão"))

	_, err := service.SyncPosts(context.Background())

	assert.ErrorIs(t, err, syncing.ErrDatabaseOperation)
}
