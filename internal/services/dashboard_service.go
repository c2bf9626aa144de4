package services

import (
	"fmt"
	"math"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/models"
	"github.com/kiranvs080988/Boutique1/internal/redis"
	"github.com/kiranvs080988/Boutique1/internal/repository"
)

type DashboardService interface {
	Summary() (*models.DashboardStats, error)
	RevenueMetrics() (map[string]interface{}, error)
	OrderMetrics() (map[string]interface{}, error)
	Alerts() (map[string]interface{}, error)
	RecentActivity() (map[string]interface{}, error)
}

type dashboardService struct {
	orderRepo  repository.WorkOrderRepository
	clientRepo repository.ClientRepository
	cache      *redis.Cache
}

func NewDashboardService(orderRepo repository.WorkOrderRepository, clientRepo repository.ClientRepository, cache *redis.Cache) DashboardService {
	return &dashboardService{orderRepo: orderRepo, clientRepo: clientRepo, cache: cache}
}

// Summary returns the dashboard counters, served from the cache when fresh.
func (s *dashboardService) Summary() (*models.DashboardStats, error) {
	if cached, err := s.cache.GetDashboardStats(); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := s.orderRepo.DashboardStats()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetDashboardStats(stats); err != nil {
		// A failed cache write must not fail the read path.
		return stats, nil
	}
	return stats, nil
}

func (s *dashboardService) RevenueMetrics() (map[string]interface{}, error) {
	stats, err := s.Summary()
	if err != nil {
		return nil, err
	}

	avgOrderValue := 0.0
	if stats.TotalWorkOrders > 0 {
		avgOrderValue = stats.TotalRevenue / float64(stats.TotalWorkOrders)
	}
	expectedRevenue := stats.TotalRevenue + stats.PendingPayments
	completionRate := 0.0
	if expectedRevenue > 0 {
		completionRate = stats.TotalRevenue / expectedRevenue * 100
	}

	return map[string]interface{}{
		"total_revenue":           stats.TotalRevenue,
		"pending_payments":        stats.PendingPayments,
		"average_order_value":     round2(avgOrderValue),
		"payment_completion_rate": round2(completionRate),
		"total_expected_revenue":  expectedRevenue,
	}, nil
}

func (s *dashboardService) OrderMetrics() (map[string]interface{}, error) {
	stats, err := s.Summary()
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	overdueRate := 0.0
	if stats.TotalWorkOrders > 0 {
		completionRate = float64(stats.CompletedOrders) / float64(stats.TotalWorkOrders) * 100
		overdueRate = float64(stats.OverdueWorkOrders) / float64(stats.TotalWorkOrders) * 100
	}

	return map[string]interface{}{
		"total_orders":          stats.TotalWorkOrders,
		"active_orders":         stats.ActiveWorkOrders,
		"completed_orders":      stats.CompletedOrders,
		"overdue_orders":        stats.OverdueWorkOrders,
		"orders_due_today":      stats.OrdersDueInOneDay,
		"completion_rate":       round2(completionRate),
		"overdue_rate":          round2(overdueRate),
		"on_time_delivery_rate": round2(100 - overdueRate),
	}, nil
}

// Alerts flags overdue orders as critical and due-today orders as warnings.
func (s *dashboardService) Alerts() (map[string]interface{}, error) {
	overdue, err := s.orderRepo.Overdue()
	if err != nil {
		return nil, err
	}
	dueToday, err := s.orderRepo.DueInOneDay()
	if err != nil {
		return nil, err
	}

	alerts := []map[string]interface{}{}
	if len(overdue) > 0 {
		alerts = append(alerts, map[string]interface{}{
			"type":    "critical",
			"title":   fmt.Sprintf("%d Overdue Orders", len(overdue)),
			"message": fmt.Sprintf("You have %d orders that are past their delivery date", len(overdue)),
			"count":   len(overdue),
			"action":  "Review overdue orders immediately",
		})
	}
	if len(dueToday) > 0 {
		alerts = append(alerts, map[string]interface{}{
			"type":    "warning",
			"title":   fmt.Sprintf("%d Orders Due Today", len(dueToday)),
			"message": fmt.Sprintf("You have %d orders due within 24 hours", len(dueToday)),
			"count":   len(dueToday),
			"action":  "Prepare for delivery",
		})
	}
	if len(alerts) == 0 {
		alerts = append(alerts, map[string]interface{}{
			"type":    "info",
			"title":   "All Orders On Track",
			"message": "No overdue orders or urgent deliveries",
			"count":   0,
			"action":  "Continue normal operations",
		})
	}

	criticalCount := 0
	warningCount := 0
	for _, alert := range alerts {
		switch alert["type"] {
		case "critical":
			criticalCount++
		case "warning":
			warningCount++
		}
	}

	return map[string]interface{}{
		"alerts":         alerts,
		"total_alerts":   criticalCount + warningCount,
		"critical_count": criticalCount,
		"warning_count":  warningCount,
	}, nil
}

func (s *dashboardService) RecentActivity() (map[string]interface{}, error) {
	orders, err := s.orderRepo.Recent(time.Time{}, 10)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.GetRecent(5)
	if err != nil {
		return nil, err
	}

	recentOrders := make([]map[string]interface{}, 0, len(orders))
	for _, order := range orders {
		entry := map[string]interface{}{
			"id":                order.ID,
			"status":            order.Status,
			"expected_delivery": order.ExpectedDeliveryDate,
			"created_at":        order.CreatedAt,
		}
		if order.Client != nil {
			entry["client_name"] = order.Client.Name
		}
		recentOrders = append(recentOrders, entry)
	}

	recentClients := make([]map[string]interface{}, 0, len(clients))
	for _, client := range clients {
		recentClients = append(recentClients, map[string]interface{}{
			"id":         client.ID,
			"name":       client.Name,
			"mobile":     client.MobileNumber,
			"created_at": client.CreatedAt,
		})
	}

	return map[string]interface{}{
		"recent_orders":  recentOrders,
		"recent_clients": recentClients,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
