package instagram

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igdomain"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/mocks"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func insightsWithPlays(v float64) *igdomain.InsightsResponse {
	return &igdomain.InsightsResponse{
		Data: []igdomain.InsightItem{{Name: "plays", Values: []igdomain.InsightValue{{Value: &v}}}},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Instagram:     config.Instagram{MediaLimit: 25, TopN: 2},
		InstagramSync: config.InstagramSync{MaxConcurrentJobs: 2},
	}
}

func TestMediaTypeFromString(t *testing.T) {
	tests := map[string]domain.MediaType{
		"IMAGE":          domain.MediaTypeImage,
		"video":          domain.MediaTypeVideo,
		"CAROUSEL_ALBUM": domain.MediaTypeCarousel,
		"REELS":          domain.MediaTypeReels,
		"STORY":          domain.MediaTypeUnknown,
		"":               domain.MediaTypeUnknown,
	}

	for input, want := range tests {
		assert.Equal(t, want, MediaTypeFromString(input), input)
	}
}

func TestExtractHashtags(t *testing.T) {
	assert.Equal(t, []string{}, ExtractHashtags(nil))
	assert.Equal(t,
		[]string{"verão", "moda_praia", "2024", "espaço"},
		ExtractHashtags(strPtr("Look de #Verão #moda_praia #VERÃO #2024! colado#espaço?")),
	)
}

func TestRankByViews(t *testing.T) {
	items := []RankedMedia{
		{Media: igdomain.Media{ID: "sem-views"}},
		{Media: igdomain.Media{ID: "baixo"}, Views: int64Ptr(10)},
		{Media: igdomain.Media{ID: "alto"}, Views: int64Ptr(500)},
		{Media: igdomain.Media{ID: "zero"}, Views: int64Ptr(0)},
	}

	top := RankByViews(items, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "alto", top[0].ID)
	assert.Equal(t, "baixo", top[1].ID)
	assert.Equal(t, "zero", top[2].ID)
	assert.Equal(t, "sem-views", items[0].ID, "entrada não é alterada")
}

func TestParseTimestamp(t *testing.T) {
	got := ParseTimestamp(strPtr("2024-05-01T13:45:00+0000"))
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC), *got)

	assert.Nil(t, ParseTimestamp(strPtr("ontem")))
	assert.Nil(t, ParseTimestamp(nil))
}

func TestFetchAccountProfile(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, profile *AccountProfile, err error)
	}{
		{
			name: "perfil com profile_views",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProfile(gomock.Any()).Return(&igdomain.Profile{
					UserID:         "178",
					Username:       "ana",
					FollowersCount: int64Ptr(1000),
					MediaCount:     int64Ptr(12),
				}, nil)
				client.EXPECT().GetProfileViews(gomock.Any(), "178").Return(int64Ptr(33), nil)
			},
			validate: func(t *testing.T, profile *AccountProfile, err error) {
				require.NoError(t, err)
				assert.Equal(t, "178", profile.IgUserID)
				assert.Equal(t, int64(1000), *profile.Followers)
				assert.Equal(t, int64(33), *profile.ProfileViews)
				assert.Nil(t, profile.ProfileImageURL)
			},
		},
		{
			name: "falha no insight vira desconhecido",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProfile(gomock.Any()).Return(&igdomain.Profile{ID: "9", ProfilePictureURL: "https://img"}, nil)
				client.EXPECT().GetProfileViews(gomock.Any(), "9").Return(nil, errors.New("sem permissão"))
			},
			validate: func(t *testing.T, profile *AccountProfile, err error) {
				require.NoError(t, err)
				assert.Nil(t, profile.ProfileViews)
				assert.Equal(t, "https://img", *profile.ProfileImageURL)
			},
		},
		{
			name: "falha no perfil",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProfile(gomock.Any()).Return(nil, errors.New("GRAPH 400"))
			},
			validate: func(t *testing.T, profile *AccountProfile, err error) {
				assert.Error(t, err)
				assert.Nil(t, profile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			profile, err := New(testConfig(), client).FetchAccountProfile(context.Background())
			tt.validate(t, profile, err)
		})
	}
}

func TestFetchTopMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetBusinessAccountID(gomock.Any()).Return("1784", nil)
	client.EXPECT().ListMedia(gomock.Any(), "1784", 25).Return([]igdomain.Media{
		{ID: "a", MediaType: "IMAGE", Caption: strPtr("#Praia")},
		{ID: "b", MediaType: "REELS"},
		{ID: "c", MediaType: "VIDEO"},
	}, nil)
	client.EXPECT().GetMediaInsights(gomock.Any(), "a").Return(insightsWithPlays(10), nil)
	client.EXPECT().GetMediaInsights(gomock.Any(), "b").Return(nil, errors.New("não suportado"))
	client.EXPECT().GetMediaInsights(gomock.Any(), "c").Return(insightsWithPlays(99), nil)

	igUserID, top, err := New(testConfig(), client).FetchTopMedia(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1784", igUserID)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].ID)
	assert.Equal(t, domain.MediaTypeVideo, top[0].Type)
	assert.Equal(t, "a", top[1].ID)
	assert.Equal(t, []string{"praia"}, top[1].Hashtags)
}
