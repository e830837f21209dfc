package syncing

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

const (
	KindInstagramAccount = "instagram_account"
	KindInstagramPosts   = "instagram_posts"

	// Alvo registrado no sync de posts, que sempre usa a conta business do token
	postsSyncTarget = "business_account"
)

// Etapas registradas em sync_runs
const (
	stepProfileFetched   = "profile_fetched"
	stepAccountUpserted  = "account_upserted"
	stepSnapshotUpserted = "snapshot_upserted"
	stepMediaFetched     = "media_fetched"
	stepPostsUpserted    = "posts_upserted"
	stepAggregatesSaved  = "aggregates_saved"
)

type Syncer interface {
	SyncAccount(ctx context.Context, profileID string) (*AccountSyncResult, error)
	SyncPosts(ctx context.Context) (*PostsSyncResult, error)
}

type AccountSyncResult struct {
	OK                bool   `json:"ok"`
	AccountID         string `json:"account_id"`
	ProfileID         string `json:"profile_id"`
	Platform          string `json:"platform"`
	PlatformProfileID string `json:"platform_profile_id"`
}

type PostsSyncResult struct {
	OK             bool   `json:"ok"`
	AccountID      string `json:"account_id"`
	TopPostsSynced int    `json:"top_posts_synced"`

	// false quando ainda não existe snapshot do dia para a conta
	AggregatesUpdated bool `json:"aggregates_updated"`
}

type Service struct {
	source      InstagramSource
	accountRepo repository.AccountRepository
	metricRepo  repository.MetricRepository
	postRepo    repository.PostRepository
	syncRunRepo repository.SyncRunRepository
	cfg         *config.Config
	now         func() time.Time
}

func NewService(
	source InstagramSource,
	accountRepo repository.AccountRepository,
	metricRepo repository.MetricRepository,
	postRepo repository.PostRepository,
	syncRunRepo repository.SyncRunRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		source:      source,
		accountRepo: accountRepo,
		metricRepo:  metricRepo,
		postRepo:    postRepo,
		syncRunRepo: syncRunRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

// track registra a execução em sync_runs. Uma execução que falha é refeita do
// início na próxima chamada, já que todas as escritas são upserts.
func (s *Service) track(ctx context.Context, kind, target string, fn func(checkpoint func(step string)) error) error {
	run, err := s.syncRunRepo.Start(ctx, kind, target)
	if err != nil {
		return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "start", err.Error())
	}

	logger := logrus.WithFields(logrus.Fields{
		"sync_run_id": run.ID,
		"kind":        kind,
		"target":      target,
	})
	logger.Info("Sincronização iniciada")

	checkpoint := func(step string) {
		if err := s.syncRunRepo.Checkpoint(ctx, run.ID, step); err != nil {
			logger.WithError(err).Warnf("Falha ao registrar a etapa %s", step)
		}
	}

	runErr := fn(checkpoint)

	status := domain.SyncRunStatusSucceeded
	var errMsg *string
	if runErr != nil {
		status = domain.SyncRunStatusFailed
		msg := runErr.Error()
		errMsg = &msg
		logger.WithError(runErr).Error("Sincronização falhou")
	} else {
		logger.Info("Sincronização concluída")
	}

	if err := s.syncRunRepo.Finish(ctx, run.ID, status, errMsg); err != nil {
		logger.WithError(err).Warn("Falha ao finalizar o registro da sincronização")
	}

	return runErr
}

// SyncAccount atualiza a conta do Instagram ligada ao usuário profileID e grava o snapshot do dia
func (s *Service) SyncAccount(ctx context.Context, profileID string) (*AccountSyncResult, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, NewSyncError(ErrProfileIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	platform := s.cfg.Instagram.Platform
	result := &AccountSyncResult{ProfileID: profileID, Platform: platform}

	err := s.track(ctx, KindInstagramAccount, profileID, func(checkpoint func(string)) error {
		profile, err := s.source.FetchAccountProfile(ctx)
		if err != nil {
			return NewSyncError(ErrGraphAPI, apiErrors.ErrExternalService, stepProfileFetched, err.Error())
		}
		checkpoint(stepProfileFetched)

		existing, err := s.accountRepo.GetByProfileID(ctx, platform, profileID)
		if err != nil {
			return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, stepAccountUpserted, err.Error())
		}

		account := s.accountFromProfile(profileID, profile, existing)
		accountID, err := s.accountRepo.Upsert(ctx, account)
		if err != nil {
			return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, stepAccountUpserted, err.Error())
		}
		checkpoint(stepAccountUpserted)

		// maximum_likes e videos vêm do sync de posts
		snapshot := &domain.MetricSnapshot{
			AccountID:    accountID,
			Posts:        profile.Posts,
			Followers:    profile.Followers,
			Following:    profile.Following,
			ProfileViews: profile.ProfileViews,
			MetricDate:   utils.StartOfDay(s.now()),
		}
		if err := s.metricRepo.UpsertSnapshot(ctx, snapshot); err != nil {
			return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, stepSnapshotUpserted, err.Error())
		}
		checkpoint(stepSnapshotUpserted)

		result.AccountID = accountID
		result.PlatformProfileID = profile.IgUserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.OK = true
	return result, nil
}

// accountFromProfile monta a conta a partir do perfil. Campos curados
// manualmente (país, email, idioma, gênero, live, palavras-chave) são mantidos.
func (s *Service) accountFromProfile(profileID string, profile *instagram.AccountProfile, existing *domain.Account) *domain.Account {
	igUserID := profile.IgUserID

	accountName := profile.Username
	if accountName == "" {
		accountName = profile.Name
	}
	if accountName == "" {
		accountName = igUserID
	}

	account := &domain.Account{
		Platform:          s.cfg.Instagram.Platform,
		PlatformProfileID: &igUserID,
		ProfileID:         &profileID,
		AccountName:       accountName,
		Caption:           profile.Biography,
		ProfileImageURL:   profile.ProfileImageURL,
		IsVerified:        profile.IsVerified,
		BusinessAccount:   true,
	}

	if profile.Username != "" {
		url := "https://www.instagram.com/" + profile.Username + "/"
		account.AccountURL = &url
	}

	if account.ProfileImageURL == nil {
		placeholder := s.cfg.Instagram.PlaceholderImageURL
		account.ProfileImageURL = &placeholder
	}

	if existing != nil {
		account.Country = existing.Country
		account.Email = existing.Email
		account.Language = existing.Language
		account.Gender = existing.Gender
		account.DoesLivestream = existing.DoesLivestream
		account.Keywords = existing.Keywords
	}

	return account
}

// SyncPosts grava as mídias mais vistas da conta business e atualiza
// maximum_likes e videos do snapshot do dia
func (s *Service) SyncPosts(ctx context.Context) (*PostsSyncResult, error) {
	platform := s.cfg.Instagram.Platform
	result := &PostsSyncResult{}

	err := s.track(ctx, KindInstagramPosts, postsSyncTarget, func(checkpoint func(string)) error {
		igUserID, top, err := s.source.FetchTopMedia(ctx)
		if err != nil {
			return NewSyncError(ErrGraphAPI, apiErrors.ErrExternalService, stepMediaFetched, err.Error())
		}
		checkpoint(stepMediaFetched)

		account, err := s.accountRepo.GetByPlatformProfileID(ctx, platform, igUserID)
		if err != nil {
			return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, stepPostsUpserted, err.Error())
		}
		if account == nil {
			return NewSyncError(ErrAccountNotSynced, apiErrors.ErrResourceNotFound, stepPostsUpserted, igUserID)
		}

		now := s.now()
		today := utils.StartOfDay(now)

		var maxLikes, videos int64
		for _, item := range top {
			likes := valueOrZero(item.LikeCount)
			comments := valueOrZero(item.CommentsCount)
			if likes > maxLikes {
				maxLikes = likes
			}
			if item.Type.IsVideo() {
				videos++
			}

			if err := s.savePost(ctx, account.ID, item, likes, comments, now, today); err != nil {
				return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, stepPostsUpserted, err.Error())
			}
		}
		checkpoint(stepPostsUpserted)

		updated, err := s.metricRepo.UpdateDailyAggregates(ctx, account.ID, today, maxLikes, videos)
		if err != nil {
			return NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, stepAggregatesSaved, err.Error())
		}
		if !updated {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"metric_date": today.Format(time.DateOnly),
			}).Info("Sem snapshot do dia, agregados de posts não gravados")
		}
		checkpoint(stepAggregatesSaved)

		result.AccountID = account.ID
		result.TopPostsSynced = len(top)
		result.AggregatesUpdated = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.OK = true
	return result, nil
}

func (s *Service) savePost(ctx context.Context, accountID string, item instagram.RankedMedia, likes, comments int64, now, today time.Time) error {
	postID, err := s.postRepo.UpsertPost(ctx, &domain.Post{
		AccountID:      accountID,
		ExternalPostID: item.ID,
		MediaType:      item.Type,
		Caption:        item.Caption,
		Link:           item.Permalink,
		PostedAt:       item.PostedAt,
		ScrapedAt:      now,
	})
	if err != nil {
		return err
	}

	err = s.postRepo.UpsertMetrics(ctx, domain.PostMetric{
		PostID:     postID,
		Likes:      likes,
		Comments:   comments,
		Views:      item.Views,
		MetricDate: today,
	})
	if err != nil {
		return err
	}

	for _, tag := range item.Hashtags {
		hashtagID, err := s.postRepo.UpsertHashtag(ctx, tag)
		if err != nil {
			return err
		}
		if err := s.postRepo.LinkHashtag(ctx, postID, hashtagID); err != nil {
			return err
		}
	}

	return nil
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
