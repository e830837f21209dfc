package domain

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusOngoing  CampaignStatus = "ongoing"
	CampaignStatusComplete CampaignStatus = "complete"
)

type Campaign struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Budget      *float64       `json:"budget"`
	Goal        *string        `json:"goal"`
	Status      CampaignStatus `json:"status"`
	Influencers *string        `json:"influencers"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CampaignOption é a forma resumida usada nas listas de seleção
type CampaignOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CampaignInfluencer struct {
	CampaignID  string    `json:"campaign_id"`
	AccountID   string    `json:"account_id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCampaignRequest aceita datas no formato 2006-01-02 e orçamento numérico ou texto
type CreateCampaignRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	StartDate   *string     `json:"start_date"`
	EndDate     *string     `json:"end_date"`
	Budget      *FlexNumber `json:"budget"`
	Goal        *string     `json:"goal"`
	Status      *string     `json:"status"`
}

type UpdateCampaignRequest struct {
	ID          string      `json:"-"`
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	StartDate   *string     `json:"start_date"`
	EndDate     *string     `json:"end_date"`
	Budget      *FlexNumber `json:"budget"`
	Goal        *string     `json:"goal"`
	Status      *string     `json:"status"`
}

// CampaignChanges são os campos já validados de uma edição
type CampaignChanges struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Goal        *string
	Status      *CampaignStatus
}

// AppendInfluencerName acrescenta o nome à lista textual de influenciadores.
// Lista vazia ou nula recebe apenas o nome, sem separador.
func AppendInfluencerName(existing *string, name string) string {
	if existing == nil || strings.TrimSpace(*existing) == "" {
		return name
	}
	return *existing + ", " + name
}

// HasInfluencerName indica se o nome já está na lista textual. Campanhas
// antigas têm nomes nessa lista sem o vínculo correspondente.
func HasInfluencerName(existing *string, name string) bool {
	if existing == nil {
		return false
	}

	name = strings.TrimSpace(name)
	for _, part := range strings.Split(*existing, ",") {
		if strings.EqualFold(strings.TrimSpace(part), name) {
			return true
		}
	}
	return false
}
