package igdomain

import "strings"

// Profile é a resposta de /me na graph.instagram.com
type Profile struct {
	UserID            string  `json:"user_id"`
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	AccountType       string  `json:"account_type"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	FollowersCount    *int64  `json:"followers_count"`
	FollowsCount      *int64  `json:"follows_count"`
	MediaCount        *int64  `json:"media_count"`
	Biography         *string `json:"biography"`
	Website           *string `json:"website"`
	IsVerified        *bool   `json:"is_verified"`
}

// IgUserID devolve user_id, ou id quando user_id não vier
func (p *Profile) IgUserID() string {
	if id := strings.TrimSpace(p.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(p.ID)
}

// FacebookAccounts é a resposta de /me/accounts na graph.facebook.com
type FacebookAccounts struct {
	Data []struct {
		InstagramBusinessAccount *struct {
			ID string `json:"id"`
		} `json:"instagram_business_account"`
	} `json:"data"`
}

// BusinessAccountID retorna o primeiro instagram_business_account encontrado
func (f *FacebookAccounts) BusinessAccountID() string {
	for _, page := range f.Data {
		if page.InstagramBusinessAccount != nil && page.InstagramBusinessAccount.ID != "" {
			return page.InstagramBusinessAccount.ID
		}
	}
	return ""
}
