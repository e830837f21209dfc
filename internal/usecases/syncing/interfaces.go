package syncing

import (
	"context"

	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram"
)

// InstagramSource define as leituras da Graph API usadas pela sincronização
type InstagramSource interface {
	// FetchAccountProfile obtém o perfil do dono do token e o insight profile_views
	FetchAccountProfile(ctx context.Context) (*instagram.AccountProfile, error)

	// FetchTopMedia obtém o ID da conta business e as mídias mais vistas
	FetchTopMedia(ctx context.Context) (string, []instagram.RankedMedia, error)
}
