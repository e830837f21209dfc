package campaigning

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

type Campaigner interface {
	Create(ctx context.Context, userID string, request domain.CreateCampaignRequest) (*domain.Campaign, error)
	List(ctx context.Context, userID string, status string) ([]*domain.Campaign, error)
	Get(ctx context.Context, userID, campaignID string) (*domain.Campaign, error)
	Update(ctx context.Context, userID string, request domain.UpdateCampaignRequest) (*domain.Campaign, error)
	AttachInfluencer(ctx context.Context, userID, campaignID, accountID string) (*domain.Campaign, error)
	ListInfluencers(ctx context.Context, userID, campaignID string) ([]domain.CampaignInfluencer, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	accountRepo  repository.AccountRepository
}

func NewService(campaignRepo repository.CampaignRepository, accountRepo repository.AccountRepository) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
	}
}

func (s *Service) Create(ctx context.Context, userID string, request domain.CreateCampaignRequest) (*domain.Campaign, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewCampaignError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "name is required")
	}

	startDate, endDate, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	status := domain.CampaignStatusDraft
	if request.Status != nil && strings.TrimSpace(*request.Status) != "" {
		status = domain.CampaignStatus(strings.TrimSpace(*request.Status))
	}

	id, err := utils.GenerateID(utils.DefaultIDLength)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID da campanha")
	}

	campaign := &domain.Campaign{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Description: request.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      utils.RoundMoney(request.Budget.Float()),
		Goal:        request.Goal,
		Status:      status,
	}

	campaign, err = s.campaignRepo.Create(ctx, campaign)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao criar campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{"campaign_id": campaign.ID, "user_id": userID}).Info("Campanha criada")
	return campaign, nil
}

// parseDateRange valida as datas informadas. Só compara quando ambas existem.
func parseDateRange(start, end *string) (*time.Time, *time.Time, error) {
	startDate, err := parseOptionalDate(start, "start_date")
	if err != nil {
		return nil, nil, err
	}

	endDate, err := parseOptionalDate(end, "end_date")
	if err != nil {
		return nil, nil, err
	}

	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, nil, err
	}

	return startDate, endDate, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	date, err := utils.ParseDate(*value)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidDate, apiErrors.ErrInvalidFormat, field+" deve estar no formato YYYY-MM-DD")
	}
	return date, nil
}

func validateDateRange(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return NewCampaignError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "end_date must be after start_date")
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string, status string) ([]*domain.Campaign, error) {
	var filter *domain.CampaignStatus
	if status = strings.TrimSpace(status); status != "" {
		st := domain.CampaignStatus(status)
		filter = &st
	}

	campaigns, err := s.campaignRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao listar campanhas")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return campaigns, nil
}

func (s *Service) Get(ctx context.Context, userID, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, userID, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "Campanha não encontrada")
	}

	return campaign, nil
}

// Update aplica a edição parcial. As datas são validadas junto com as já gravadas.
func (s *Service) Update(ctx context.Context, userID string, request domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	current, err := s.Get(ctx, userID, request.ID)
	if err != nil {
		return nil, err
	}

	changes := domain.CampaignChanges{
		Description: request.Description,
		Goal:        request.Goal,
		Budget:      utils.RoundMoney(request.Budget.Float()),
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewCampaignErrorWithID(ErrNameRequired, apiErrors.ErrMissingRequiredData, request.ID, "name is required")
		}
		changes.Name = &name
	}

	if request.Status != nil && strings.TrimSpace(*request.Status) != "" {
		status := domain.CampaignStatus(strings.TrimSpace(*request.Status))
		changes.Status = &status
	}

	if changes.StartDate, err = parseOptionalDate(request.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if changes.EndDate, err = parseOptionalDate(request.EndDate, "end_date"); err != nil {
		return nil, err
	}

	startDate, endDate := current.StartDate, current.EndDate
	if changes.StartDate != nil {
		startDate = changes.StartDate
	}
	if changes.EndDate != nil {
		endDate = changes.EndDate
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.Update(ctx, userID, request.ID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, request.ID, "Campanha não encontrada")
		}
		logrus.WithError(err).WithField("campaign_id", request.ID).Error("Erro ao atualizar campanha")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, err.Error())
	}

	return campaign, nil
}

// AttachInfluencer vincula a conta à campanha do usuário. Repetir o vínculo não altera nada.
func (s *Service) AttachInfluencer(ctx context.Context, userID, campaignID, accountID string) (*domain.Campaign, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, NewCampaignErrorWithID(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, campaignID, "account_id is required")
	}
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, NewCampaignErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, campaignID, "Influenciador não encontrado")
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if account == nil {
		return nil, NewCampaignErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, campaignID, "Influenciador não encontrado")
	}

	campaign, attached, err := s.campaignRepo.AttachInfluencer(ctx, userID, campaignID, account)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "Campanha não encontrada")
		}
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao vincular influenciador")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"account_id":  accountID,
		"attached":    attached,
	}).Info("Influenciador vinculado à campanha")

	return campaign, nil
}

func (s *Service) ListInfluencers(ctx context.Context, userID, campaignID string) ([]domain.CampaignInfluencer, error) {
	if _, err := s.Get(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	influencers, err := s.campaignRepo.ListInfluencers(ctx, userID, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	return influencers, nil
}
