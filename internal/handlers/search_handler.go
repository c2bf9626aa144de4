package handlers

import (
	"net/http"

	"github.com/kiranvs080988/Boutique1/internal/models"
	"github.com/kiranvs080988/Boutique1/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	orderService  services.WorkOrderService
	clientService services.ClientService
}

func NewSearchHandler(orderService services.WorkOrderService, clientService services.ClientService) *SearchHandler {
	return &SearchHandler{orderService: orderService, clientService: clientService}
}

// SearchWorkOrders matches the query against client name, client mobile,
// order description and order notes.
func (h *SearchHandler) SearchWorkOrders(c *gin.Context) {
	query := c.Query("query")
	status := models.OrderStatus(c.Query("status"))
	limit := queryInt(c, "limit", 20)

	orders, err := h.orderService.Search(query, status, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":         query,
		"total_results": len(orders),
		"results":       models.ToResponses(orders),
	})
}

func (h *SearchHandler) SearchClients(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search term is required"})
		return
	}
	limit := queryInt(c, "limit", 20)

	results, err := h.clientService.SearchClients(query, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":         query,
		"total_results": len(results),
		"results":       results,
	})
}

// QuickLookup finds clients by partial mobile or name and returns all their
// work orders, grouped per client.
func (h *SearchHandler) QuickLookup(c *gin.Context) {
	mobile := c.Query("mobile")
	name := c.Query("name")

	summaries, err := h.clientService.QuickLookup(mobile, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"search_criteria": gin.H{"mobile": mobile, "name": name},
		"total_clients":   len(summaries),
		"results":         summaries,
	})
}

func (h *SearchHandler) RecentOrders(c *gin.Context) {
	days := queryInt(c, "days", 7)
	limit := queryInt(c, "limit", 50)

	orders, err := h.orderService.Recent(days, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"days_back":     days,
		"total_results": len(orders),
		"results":       models.ToResponses(orders),
	})
}

// MobileWorkOrders returns all orders for the client matching a (possibly
// partial) mobile number, shaped for a table view.
func (h *SearchHandler) MobileWorkOrders(c *gin.Context) {
	mobile := c.Param("mobile")

	summary, err := h.clientService.SummaryByPartialMobile(mobile)
	if err != nil {
		if err == services.ErrClientNotFound {
			c.JSON(http.StatusOK, gin.H{
				"mobile_number": mobile,
				"client_found":  false,
				"message":       "No client found with mobile number: " + mobile,
				"table_data":    []models.WorkOrderResponse{},
			})
			return
		}
		respondError(c, err)
		return
	}

	overdueCount := 0
	for _, order := range summary.WorkOrders {
		if order.IsOverdue {
			overdueCount++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"mobile_number":     mobile,
		"client_found":      true,
		"client_info":       summary.Client,
		"total_work_orders": summary.TotalOrders,
		"active_orders":     summary.ActiveOrders,
		"overdue_orders":    overdueCount,
		"table_data":        summary.WorkOrders,
	})
}

// UpdateStatusAfterSearch changes a work order's status by id, for use after
// selecting a search result.
func (h *SearchHandler) UpdateStatusAfterSearch(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	newStatus := models.OrderStatus(c.Query("new_status"))
	if newStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_status is required"})
		return
	}

	order, err := h.orderService.GetWorkOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	oldStatus := order.Status

	updated, err := h.orderService.UpdateStatus(id, newStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Status updated from '" + string(oldStatus) + "' to '" + string(newStatus) + "'",
		"work_order_id": id,
		"old_status":    oldStatus,
		"new_status":    newStatus,
		"updated_order": updated.ToResponse(),
	})
}
