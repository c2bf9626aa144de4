package handlers

import (
	"net/http"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/models"
	"github.com/kiranvs080988/Boutique1/internal/services"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	orderService services.WorkOrderService
}

func NewWorkOrderHandler(orderService services.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{orderService: orderService}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var input services.CreateWorkOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateWorkOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order.ToResponse())
}

func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	offset := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 100)

	orders, err := h.orderService.ListWorkOrders(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToResponses(orders))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetWorkOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}

func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateWorkOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateWorkOrder(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}

func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteWorkOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work order deleted successfully", "success": true})
}

// PriorityList returns all orders sorted by expected delivery date.
func (h *WorkOrderHandler) PriorityList(c *gin.Context) {
	sortOrder := c.DefaultQuery("sort_order", "asc")

	orders, err := h.orderService.Priority(sortOrder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"work_orders": models.ToResponses(orders),
		"sort_order":  sortOrder,
		"total_count": len(orders),
	})
}

// FilterAdvanced combines the optional filter predicates with AND.
func (h *WorkOrderHandler) FilterAdvanced(c *gin.Context) {
	filter := models.WorkOrderFilter{
		OverdueOnly: c.Query("overdue_only") == "true",
		Status:      models.OrderStatus(c.Query("status")),
		ClientID:    uint(queryInt(c, "client_id", 0)),
	}

	var ok bool
	if filter.DeliveryDate, ok = queryTime(c, "delivery_date"); !ok {
		return
	}
	if filter.DeliveryWindowStart, ok = queryTime(c, "delivery_window_start"); !ok {
		return
	}
	if filter.DeliveryWindowEnd, ok = queryTime(c, "delivery_window_end"); !ok {
		return
	}

	orders, err := h.orderService.Filter(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToResponses(orders))
}

func (h *WorkOrderHandler) GetOverdue(c *gin.Context) {
	orders, err := h.orderService.Overdue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToResponses(orders))
}

func (h *WorkOrderHandler) GetDueToday(c *gin.Context) {
	orders, err := h.orderService.DueInOneDay()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToResponses(orders))
}

func (h *WorkOrderHandler) GetActive(c *gin.Context) {
	orders, err := h.orderService.Active()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToResponses(orders))
}

// queryTime parses an optional RFC3339 or YYYY-MM-DD query parameter. The
// bool result is false when the parameter was present but unparsable (a 400
// has already been written).
func queryTime(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": expected RFC3339 or YYYY-MM-DD"})
	return nil, false
}
