package services

import (
	"errors"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/models"
	"github.com/kiranvs080988/Boutique1/internal/redis"
	"github.com/kiranvs080988/Boutique1/internal/repository"

	"gorm.io/gorm"
)

type CreateWorkOrderInput struct {
	ClientID      uint   `json:"client_id"`
	ClientName    string `json:"client_name"`
	ClientMobile  string `json:"client_mobile"`
	ClientEmail   string `json:"client_email"`
	ClientAddress string `json:"client_address"`

	ExpectedDeliveryDate time.Time          `json:"expected_delivery_date" binding:"required"`
	Description          string             `json:"description"`
	Notes                string             `json:"notes"`
	Status               models.OrderStatus `json:"status"`
	AdvancePaid          float64            `json:"advance_paid"`
	TotalEstimate        float64            `json:"total_estimate"`
	ActualAmount         float64            `json:"actual_amount"`
	DueCleared           bool               `json:"due_cleared"`
}

type UpdateWorkOrderInput struct {
	ExpectedDeliveryDate *time.Time          `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time          `json:"actual_delivery_date"`
	Description          *string             `json:"description"`
	Notes                *string             `json:"notes"`
	Status               *models.OrderStatus `json:"status"`
	AdvancePaid          *float64            `json:"advance_paid"`
	TotalEstimate        *float64            `json:"total_estimate"`
	ActualAmount         *float64            `json:"actual_amount"`
	DueCleared           *bool               `json:"due_cleared"`
}

type WorkOrderService interface {
	ResolveClient(input CreateWorkOrderInput) (uint, error)
	CreateWorkOrder(input CreateWorkOrderInput) (*models.WorkOrder, error)
	GetWorkOrder(id uint) (*models.WorkOrder, error)
	ListWorkOrders(offset, limit int) ([]models.WorkOrder, error)
	UpdateWorkOrder(id uint, input UpdateWorkOrderInput) (*models.WorkOrder, error)
	UpdateStatus(id uint, status models.OrderStatus) (*models.WorkOrder, error)
	DeleteWorkOrder(id uint) error
	Filter(filter models.WorkOrderFilter) ([]models.WorkOrder, error)
	Priority(sortOrder string) ([]models.WorkOrder, error)
	Overdue() ([]models.WorkOrder, error)
	DueInOneDay() ([]models.WorkOrder, error)
	Active() ([]models.WorkOrder, error)
	Recent(days, limit int) ([]models.WorkOrder, error)
	Search(term string, status models.OrderStatus, limit int) ([]models.WorkOrder, error)
}

type workOrderService struct {
	orderRepo  repository.WorkOrderRepository
	clientRepo repository.ClientRepository
	cache      *redis.Cache
}

func NewWorkOrderService(orderRepo repository.WorkOrderRepository, clientRepo repository.ClientRepository, cache *redis.Cache) WorkOrderService {
	return &workOrderService{orderRepo: orderRepo, clientRepo: clientRepo, cache: cache}
}

// ResolveClient determines which client a new work order belongs to. An
// existing client id wins; otherwise the embedded client details are matched
// against the mobile number, reusing the client when one exists and creating
// it when not.
func (s *workOrderService) ResolveClient(input CreateWorkOrderInput) (uint, error) {
	if input.ClientID != 0 {
		_, err := s.clientRepo.GetByID(input.ClientID)
		if err == nil {
			return input.ClientID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		// Fall through: the caller sent a stale id but may have sent
		// enough details to resolve the client by mobile instead.
	}

	if input.ClientName == "" || input.ClientMobile == "" {
		return 0, validationErrorf("either client_id or both client_name and client_mobile must be provided")
	}
	if !mobilePattern.MatchString(input.ClientMobile) {
		return 0, validationErrorf("client mobile number must be exactly 10 digits")
	}

	existing, err := s.clientRepo.GetByMobile(input.ClientMobile)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	client := &models.Client{
		Name:         input.ClientName,
		MobileNumber: input.ClientMobile,
		Email:        input.ClientEmail,
		Address:      input.ClientAddress,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return 0, err
	}
	return client.ID, nil
}

func (s *workOrderService) CreateWorkOrder(input CreateWorkOrderInput) (*models.WorkOrder, error) {
	if input.ExpectedDeliveryDate.IsZero() {
		return nil, validationErrorf("expected_delivery_date is required")
	}
	if input.Status == "" {
		input.Status = models.StatusOrderPlaced
	}
	if !models.IsValidStatus(input.Status) {
		return nil, validationErrorf("invalid status: %s", input.Status)
	}
	if input.AdvancePaid < 0 || input.TotalEstimate < 0 || input.ActualAmount < 0 {
		return nil, validationErrorf("monetary amounts cannot be negative")
	}

	clientID, err := s.ResolveClient(input)
	if err != nil {
		return nil, err
	}

	order := &models.WorkOrder{
		ClientID:             clientID,
		OrderDate:            time.Now(),
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		Description:          input.Description,
		Notes:                input.Notes,
		Status:               input.Status,
		AdvancePaid:          input.AdvancePaid,
		TotalEstimate:        input.TotalEstimate,
		ActualAmount:         input.ActualAmount,
		DueCleared:           input.DueCleared,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboard()
	return s.GetWorkOrder(order.ID)
}

func (s *workOrderService) GetWorkOrder(id uint) (*models.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) ListWorkOrders(offset, limit int) ([]models.WorkOrder, error) {
	return s.orderRepo.GetAll(offset, limit)
}

// UpdateWorkOrder applies a partial update: only supplied fields change.
// Transition legality is not enforced; any valid status may be set directly,
// the workflow table is advisory.
func (s *workOrderService) UpdateWorkOrder(id uint, input UpdateWorkOrderInput) (*models.WorkOrder, error) {
	order, err := s.GetWorkOrder(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.IsValidStatus(*input.Status) {
			return nil, validationErrorf("invalid status: %s", *input.Status)
		}
		order.Status = *input.Status
	}
	if input.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = *input.ExpectedDeliveryDate
	}
	if input.ActualDeliveryDate != nil {
		order.ActualDeliveryDate = input.ActualDeliveryDate
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}
	if input.AdvancePaid != nil {
		if *input.AdvancePaid < 0 {
			return nil, validationErrorf("advance_paid cannot be negative")
		}
		order.AdvancePaid = *input.AdvancePaid
	}
	if input.TotalEstimate != nil {
		if *input.TotalEstimate < 0 {
			return nil, validationErrorf("total_estimate cannot be negative")
		}
		order.TotalEstimate = *input.TotalEstimate
	}
	if input.ActualAmount != nil {
		if *input.ActualAmount < 0 {
			return nil, validationErrorf("actual_amount cannot be negative")
		}
		order.ActualAmount = *input.ActualAmount
	}
	if input.DueCleared != nil {
		order.DueCleared = *input.DueCleared
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboard()
	return order, nil
}

func (s *workOrderService) UpdateStatus(id uint, status models.OrderStatus) (*models.WorkOrder, error) {
	return s.UpdateWorkOrder(id, UpdateWorkOrderInput{Status: &status})
}

func (s *workOrderService) DeleteWorkOrder(id uint) error {
	if _, err := s.GetWorkOrder(id); err != nil {
		return err
	}
	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}
	s.cache.InvalidateDashboard()
	return nil
}

func (s *workOrderService) Filter(filter models.WorkOrderFilter) ([]models.WorkOrder, error) {
	if filter.Status != "" && !models.IsValidStatus(filter.Status) {
		return nil, validationErrorf("invalid status: %s", filter.Status)
	}
	return s.orderRepo.Filter(filter)
}

func (s *workOrderService) Priority(sortOrder string) ([]models.WorkOrder, error) {
	if sortOrder != "" && sortOrder != "asc" && sortOrder != "desc" {
		return nil, validationErrorf("sort_order must be 'asc' or 'desc'")
	}
	return s.orderRepo.Priority(sortOrder)
}

func (s *workOrderService) Overdue() ([]models.WorkOrder, error) {
	return s.orderRepo.Overdue()
}

func (s *workOrderService) DueInOneDay() ([]models.WorkOrder, error) {
	return s.orderRepo.DueInOneDay()
}

func (s *workOrderService) Active() ([]models.WorkOrder, error) {
	return s.orderRepo.Active()
}

func (s *workOrderService) Recent(days, limit int) ([]models.WorkOrder, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.orderRepo.Recent(since, limit)
}

func (s *workOrderService) Search(term string, status models.OrderStatus, limit int) ([]models.WorkOrder, error) {
	if term == "" {
		return nil, validationErrorf("search term is required")
	}
	if status != "" && !models.IsValidStatus(status) {
		return nil, validationErrorf("invalid status: %s", status)
	}
	return s.orderRepo.Search(term, status, limit)
}
