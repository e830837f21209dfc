package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.Filters
		contains []string
		absent   []string
		wantArgs []interface{}
	}{
		{
			name:     "apenas plataformas",
			filters:  domain.Filters{Platforms: []string{"instagram", "tiktok"}},
			contains: []string{"(a.platform ILIKE $1 OR a.platform ILIKE $2)", "ORDER BY a.account_name ASC"},
			absent:   []string{"a.gender", "a.keywords", "maximum_likes"},
			wantArgs: []interface{}{"%instagram%", "%tiktok%"},
		},
		{
			name: "todos os filtros textuais",
			filters: domain.Filters{
				Platforms: []string{"x"},
				Username:  " ana ",
				Gender:    "female",
				Keywords:  []string{"moda", "beleza"},
			},
			contains: []string{
				"a.account_name ILIKE $2",
				"a.gender ILIKE $3",
				"(a.keywords ILIKE $4 OR a.keywords ILIKE $5)",
			},
			wantArgs: []interface{}{"%x%", "%ana%", "female", "%moda%", "%beleza%"},
		},
		{
			name:     "curingas do usuário são escapados",
			filters:  domain.Filters{Platforms: []string{"instagram"}, Username: "50%_off"},
			wantArgs: []interface{}{"%instagram%", `%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchQuery(tt.filters).ToSql()
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.absent {
				assert.NotContains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildAccountUpsert(t *testing.T) {
	profileID := "user-1"
	query, args, err := buildAccountUpsert(&domain.Account{
		Platform:    domain.PlatformInstagram,
		ProfileID:   &profileID,
		AccountName: "ana",
	}, "new-id")
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (profile_id, platform) DO UPDATE")
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, "new-id", args[0])
}

func TestBuildSnapshotUpsert(t *testing.T) {
	followers := int64(10)
	query, args, err := buildSnapshotUpsert(&domain.MetricSnapshot{
		AccountID:  "acc-1",
		Followers:  &followers,
		MetricDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (account_id, metric_date)")
	assert.Contains(t, query, "COALESCE(EXCLUDED.maximum_likes, accounts_metrics.maximum_likes)")
	assert.Len(t, args, 8)
}

func TestBuildDailyAggregatesUpdate(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildDailyAggregatesUpdate("acc-1", day, 800, 2)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE accounts_metrics SET maximum_likes = $1, videos = $2 WHERE"))
	assert.Contains(t, query, "account_id = ")
	assert.Contains(t, query, "metric_date = ")
	assert.NotContains(t, query, "INSERT")
	assert.NotContains(t, query, "ON CONFLICT")
	assert.ElementsMatch(t, []interface{}{int64(800), int64(2), "acc-1", day}, args)
}

func TestLegacyInfluencers(t *testing.T) {
	alice := "Alice"
	got, changed := legacyInfluencers(&alice, "Bob")
	assert.True(t, changed)
	assert.Equal(t, "Alice, Bob", got)

	got, changed = legacyInfluencers(nil, "Bob")
	assert.True(t, changed)
	assert.Equal(t, "Bob", got)

	// Campanha antiga que já cita o nome sem ter o vínculo
	legacy := "Alice, Bob"
	_, changed = legacyInfluencers(&legacy, "Bob")
	assert.False(t, changed)
}

func TestBuildListCampaigns(t *testing.T) {
	query, args, err := buildListCampaigns("u-1", nil).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE user_id = $1 ORDER BY created_at DESC")
	assert.Equal(t, []interface{}{"u-1"}, args)

	status := domain.CampaignStatusOngoing
	query, args, err = buildListCampaigns("u-1", &status).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "status = $2")
	assert.Equal(t, []interface{}{"u-1", domain.CampaignStatusOngoing}, args)
}

func TestBuildCampaignUpdate_ScopedByOwner(t *testing.T) {
	name := "Nova"
	query, args, err := buildCampaignUpdate("u-1", "c-1", domain.CampaignChanges{Name: &name}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "name = $1")
	assert.Contains(t, query, "WHERE id = $2 AND user_id = $3")
	assert.Contains(t, query, "RETURNING id, user_id")
	assert.Equal(t, []interface{}{"Nova", "c-1", "u-1"}, args)
}

func TestNullableCount(t *testing.T) {
	assert.Nil(t, nullableCount(sql.NullInt64{}))
	assert.Nil(t, nullableCount(sql.NullInt64{Int64: -1, Valid: true}))

	got := nullableCount(sql.NullInt64{Int64: 42, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, int64(42), *got)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "nada"))

	err := translate(&pq.Error{Code: pqUniqueViolation}, "criando usuário")
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	err = translate(fmt.Errorf("conexão recusada"), "criando usuário")
	assert.False(t, errors.Is(err, ErrAlreadyExists))
	assert.Contains(t, err.Error(), "criando usuário")
}
