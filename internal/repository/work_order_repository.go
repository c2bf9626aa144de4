package repository

import (
	"strings"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/models"

	"gorm.io/gorm"
)

type WorkOrderRepository interface {
	Create(order *models.WorkOrder) error
	GetByID(id uint) (*models.WorkOrder, error)
	GetAll(offset, limit int) ([]models.WorkOrder, error)
	GetByClientID(clientID uint) ([]models.WorkOrder, error)
	Update(order *models.WorkOrder) error
	Delete(id uint) error
	Filter(filter models.WorkOrderFilter) ([]models.WorkOrder, error)
	Priority(sortOrder string) ([]models.WorkOrder, error)
	Overdue() ([]models.WorkOrder, error)
	DueInOneDay() ([]models.WorkOrder, error)
	Active() ([]models.WorkOrder, error)
	Recent(since time.Time, limit int) ([]models.WorkOrder, error)
	Search(term string, status models.OrderStatus, limit int) ([]models.WorkOrder, error)
	CountByClient(clientID uint, activeOnly bool) (int64, error)
	DashboardStats() (*models.DashboardStats, error)
	DeleteAll() (int64, error)
	Count() (int64, error)
}

type workOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

var deliveredStatuses = []models.OrderStatus{
	models.StatusDeliveredFullyPaid,
	models.StatusDeliveredPaymentPending,
}

func (r *workOrderRepository) Create(order *models.WorkOrder) error {
	return r.db.Create(order).Error
}

func (r *workOrderRepository) GetByID(id uint) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.Preload("Client").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *workOrderRepository) GetAll(offset, limit int) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Preload("Client").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) GetByClientID(clientID uint) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Where("client_id = ?", clientID).Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) Update(order *models.WorkOrder) error {
	// The preloaded client association is read-only here; only the order
	// row is written.
	return r.db.Omit("Client").Save(order).Error
}

func (r *workOrderRepository) Delete(id uint) error {
	return r.db.Delete(&models.WorkOrder{}, id).Error
}

// Filter applies the supplied predicates, combined with AND. A specific
// delivery date matches the whole day [startOfDay, startOfDay+24h); window
// bounds are inclusive and independently optional.
func (r *workOrderRepository) Filter(filter models.WorkOrderFilter) ([]models.WorkOrder, error) {
	query := r.db.Preload("Client")

	if filter.DeliveryDate != nil {
		d := *filter.DeliveryDate
		startOfDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)
		query = query.Where("expected_delivery_date >= ? AND expected_delivery_date < ?", startOfDay, endOfDay)
	}
	if filter.DeliveryWindowStart != nil {
		query = query.Where("expected_delivery_date >= ?", *filter.DeliveryWindowStart)
	}
	if filter.DeliveryWindowEnd != nil {
		query = query.Where("expected_delivery_date <= ?", *filter.DeliveryWindowEnd)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.OverdueOnly {
		query = query.Where("expected_delivery_date < ? AND status NOT IN ?", time.Now(), deliveredStatuses)
	}

	var orders []models.WorkOrder
	err := query.Find(&orders).Error
	return orders, err
}

// Priority sorts by expected delivery date only; ties keep storage order.
func (r *workOrderRepository) Priority(sortOrder string) ([]models.WorkOrder, error) {
	order := "expected_delivery_date asc"
	if strings.EqualFold(sortOrder, "desc") {
		order = "expected_delivery_date desc"
	}
	var orders []models.WorkOrder
	err := r.db.Preload("Client").Order(order).Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) Overdue() ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Preload("Client").
		Where("expected_delivery_date < ? AND status NOT IN ?", time.Now(), deliveredStatuses).
		Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) DueInOneDay() ([]models.WorkOrder, error) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)
	var orders []models.WorkOrder
	err := r.db.Preload("Client").
		Where("expected_delivery_date >= ? AND expected_delivery_date <= ? AND status NOT IN ?",
			now, tomorrow, deliveredStatuses).
		Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) Active() ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Preload("Client").
		Where("status NOT IN ?", deliveredStatuses).
		Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) Recent(since time.Time, limit int) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Preload("Client").
		Where("created_at >= ?", since).
		Order("id desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// Search joins the clients table and matches the term as a case-insensitive
// substring of the client name, client mobile, order description or order
// notes. Newest orders come first.
func (r *workOrderRepository) Search(term string, status models.OrderStatus, limit int) ([]models.WorkOrder, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	query := r.db.Preload("Client").
		Joins("JOIN clients ON clients.id = work_orders.client_id").
		Where("lower(clients.name) LIKE ? OR lower(clients.mobile_number) LIKE ? OR lower(work_orders.description) LIKE ? OR lower(work_orders.notes) LIKE ?",
			pattern, pattern, pattern, pattern)

	if status != "" {
		query = query.Where("work_orders.status = ?", status)
	}

	var orders []models.WorkOrder
	err := query.Order("work_orders.id desc").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *workOrderRepository) CountByClient(clientID uint, activeOnly bool) (int64, error) {
	query := r.db.Model(&models.WorkOrder{}).Where("client_id = ?", clientID)
	if activeOnly {
		query = query.Where("status NOT IN ?", deliveredStatuses)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// DashboardStats produces the dashboard counters in a handful of targeted
// queries. Pending payments are summed in Go because the remaining amount
// depends on which of actual/estimate applies per order.
func (r *workOrderRepository) DashboardStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := r.db.Model(&models.WorkOrder{}).Count(&stats.TotalWorkOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.WorkOrder{}).
		Where("status NOT IN ?", deliveredStatuses).
		Count(&stats.ActiveWorkOrders).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	if err := r.db.Model(&models.WorkOrder{}).
		Where("expected_delivery_date < ? AND status NOT IN ?", now, deliveredStatuses).
		Count(&stats.OverdueWorkOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.WorkOrder{}).
		Where("expected_delivery_date >= ? AND expected_delivery_date <= ? AND status NOT IN ?",
			now, now.Add(24*time.Hour), deliveredStatuses).
		Count(&stats.OrdersDueInOneDay).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.WorkOrder{}).
		Where("status IN ?", deliveredStatuses).
		Count(&stats.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.WorkOrder{}).
		Select("COALESCE(SUM(advance_paid), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	var pendingOrders []models.WorkOrder
	if err := r.db.Where("due_cleared = ?", false).Find(&pendingOrders).Error; err != nil {
		return nil, err
	}
	for _, order := range pendingOrders {
		stats.PendingPayments += order.RemainingAmount()
	}

	return stats, nil
}

func (r *workOrderRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.WorkOrder{})
	return result.RowsAffected, result.Error
}

func (r *workOrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkOrder{}).Count(&count).Error
	return count, err
}
