package services

import (
	"errors"
	"regexp"

	"github.com/kiranvs080988/Boutique1/internal/models"
	"github.com/kiranvs080988/Boutique1/internal/redis"
	"github.com/kiranvs080988/Boutique1/internal/repository"

	"gorm.io/gorm"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

type CreateClientInput struct {
	Name         string `json:"name" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

type UpdateClientInput struct {
	Name         *string `json:"name"`
	MobileNumber *string `json:"mobile_number"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
}

type ClientService interface {
	CreateClient(input CreateClientInput) (*models.Client, error)
	GetClient(id uint) (*models.Client, error)
	GetClientByMobile(mobileNumber string) (*models.Client, error)
	ListClients(offset, limit int) ([]models.Client, error)
	UpdateClient(id uint, input UpdateClientInput) (*models.Client, error)
	DeleteClient(id uint) error
	Summary(id uint) (*models.ClientSummary, error)
	SummaryByMobile(mobileNumber string) (*models.ClientSummary, error)
	SearchClients(term string, limit int) ([]models.ClientSearchResult, error)
	QuickLookup(mobile, name string) ([]models.ClientSummary, error)
	SummaryByPartialMobile(partial string) (*models.ClientSummary, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	orderRepo  repository.WorkOrderRepository
	cache      *redis.Cache
}

func NewClientService(clientRepo repository.ClientRepository, orderRepo repository.WorkOrderRepository, cache *redis.Cache) ClientService {
	return &clientService{clientRepo: clientRepo, orderRepo: orderRepo, cache: cache}
}

func (s *clientService) CreateClient(input CreateClientInput) (*models.Client, error) {
	if input.Name == "" {
		return nil, validationErrorf("client name is required")
	}
	if !mobilePattern.MatchString(input.MobileNumber) {
		return nil, validationErrorf("mobile number must be exactly 10 digits")
	}

	count, err := s.clientRepo.CountByMobile(input.MobileNumber, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateMobile
	}

	client := &models.Client{
		Name:         input.Name,
		MobileNumber: input.MobileNumber,
		Email:        input.Email,
		Address:      input.Address,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboard()
	return client, nil
}

func (s *clientService) GetClient(id uint) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetClientByMobile(mobileNumber string) (*models.Client, error) {
	if !mobilePattern.MatchString(mobileNumber) {
		return nil, validationErrorf("mobile number must be exactly 10 digits")
	}
	client, err := s.clientRepo.GetByMobile(mobileNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(offset, limit int) ([]models.Client, error) {
	return s.clientRepo.GetAll(offset, limit)
}

func (s *clientService) UpdateClient(id uint, input UpdateClientInput) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	if input.MobileNumber != nil {
		if !mobilePattern.MatchString(*input.MobileNumber) {
			return nil, validationErrorf("mobile number must be exactly 10 digits")
		}
		count, err := s.clientRepo.CountByMobile(*input.MobileNumber, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateMobile
		}
		client.MobileNumber = *input.MobileNumber
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, validationErrorf("client name cannot be empty")
		}
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Address != nil {
		client.Address = *input.Address
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboard()
	return client, nil
}

// DeleteClient removes the client and cascades to all of its work orders.
func (s *clientService) DeleteClient(id uint) error {
	if _, err := s.GetClient(id); err != nil {
		return err
	}
	if err := s.clientRepo.Delete(id); err != nil {
		return err
	}
	s.cache.InvalidateDashboard()
	return nil
}

func (s *clientService) Summary(id uint) (*models.ClientSummary, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetByClientID(id)
	if err != nil {
		return nil, err
	}

	summary := &models.ClientSummary{
		Client:      *client,
		WorkOrders:  models.ToResponses(orders),
		TotalOrders: len(orders),
	}
	for _, order := range orders {
		if order.IsActive() {
			summary.ActiveOrders++
		} else {
			summary.CompletedOrders++
		}
		if !order.DueCleared {
			summary.TotalAmountDue += order.RemainingAmount()
		}
	}
	return summary, nil
}

func (s *clientService) SummaryByMobile(mobileNumber string) (*models.ClientSummary, error) {
	client, err := s.GetClientByMobile(mobileNumber)
	if err != nil {
		return nil, err
	}
	return s.Summary(client.ID)
}

// QuickLookup finds clients by partial mobile number or partial name and
// returns each with its full order summary. At least one criterion is
// required.
func (s *clientService) QuickLookup(mobile, name string) ([]models.ClientSummary, error) {
	if mobile == "" && name == "" {
		return nil, validationErrorf("please provide either mobile number or client name")
	}

	clients, err := s.clientRepo.LookupByMobileOrName(mobile, name)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ClientSummary, 0, len(clients))
	for _, client := range clients {
		summary, err := s.Summary(client.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// SummaryByPartialMobile serves the mobile lookup table view, which accepts
// partial numbers.
func (s *clientService) SummaryByPartialMobile(partial string) (*models.ClientSummary, error) {
	client, err := s.clientRepo.FindByMobileLike(partial)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.Summary(client.ID)
}

func (s *clientService) SearchClients(term string, limit int) ([]models.ClientSearchResult, error) {
	clients, err := s.clientRepo.Search(term, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.ClientSearchResult, 0, len(clients))
	for _, client := range clients {
		total, err := s.orderRepo.CountByClient(client.ID, false)
		if err != nil {
			return nil, err
		}
		active, err := s.orderRepo.CountByClient(client.ID, true)
		if err != nil {
			return nil, err
		}
		results = append(results, models.ClientSearchResult{
			ClientID:     client.ID,
			Name:         client.Name,
			MobileNumber: client.MobileNumber,
			Email:        client.Email,
			Address:      client.Address,
			TotalOrders:  total,
			ActiveOrders: active,
		})
	}
	return results, nil
}
