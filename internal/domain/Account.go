package domain

import (
	"time"
)

const (
	PlatformInstagram = "instagram"
	PlatformX         = "x"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
)

// Platforms lista as plataformas oferecidas no formulário de busca
var Platforms = []string{PlatformInstagram, PlatformX, PlatformTikTok, PlatformYouTube}

type Account struct {
	ID                string           `json:"id"`
	Platform          string           `json:"platform"`
	PlatformProfileID *string          `json:"platform_profile_id,omitempty"`
	ProfileID         *string          `json:"profile_id,omitempty"`
	AccountName       string           `json:"account_name"`
	AccountURL        *string          `json:"account_url,omitempty"`
	Caption           *string          `json:"caption,omitempty"`
	ProfileImageURL   *string          `json:"profile_image_url,omitempty"`
	Gender            *string          `json:"gender,omitempty"`
	Keywords          *string          `json:"keywords,omitempty"`
	IsVerified        bool             `json:"is_verified"`
	BusinessAccount   bool             `json:"business_account"`
	Country           *string          `json:"country,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Language          *string          `json:"language,omitempty"`
	DoesLivestream    *bool            `json:"does_livestream,omitempty"`
	Metrics           []MetricSnapshot `json:"metrics"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// MetricSnapshot é uma medição datada de uma conta.
// Campos nil significam "desconhecido", distinto de zero.
type MetricSnapshot struct {
	ID           int64     `json:"id,omitempty"`
	AccountID    string    `json:"account_id"`
	Posts        *int64    `json:"posts"`
	Followers    *int64    `json:"followers"`
	Following    *int64    `json:"following"`
	MaximumLikes *int64    `json:"maximum_likes"`
	ProfileViews *int64    `json:"profile_views"`
	Videos       *int64    `json:"videos"`
	MetricDate   time.Time `json:"metric_date"`
}

// DisplayName retorna o nome exibido do influenciador
func (a *Account) DisplayName() string {
	if a == nil {
		return ""
	}
	return a.AccountName
}
