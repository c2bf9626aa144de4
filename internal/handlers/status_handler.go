package handlers

import (
	"net/http"

	"github.com/kiranvs080988/Boutique1/internal/models"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the status workflow endpoints. These are advisory:
// they feed frontend dropdowns and validation, the update path accepts any
// valid status.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusOptions())
}

func (h *StatusHandler) GetWorkflow(c *gin.Context) {
	transitions := make(map[string][]string)
	for _, s := range models.AllStatuses() {
		next := models.NextOptions(s)
		values := make([]string, 0, len(next))
		for _, n := range next {
			values = append(values, string(n))
		}
		transitions[string(s)] = values
	}

	activeStates := []string{}
	finalStates := []string{}
	for _, s := range models.AllStatuses() {
		if models.IsFinalStatus(s) {
			finalStates = append(finalStates, string(s))
		}
		if !models.IsFinalStatus(s) {
			activeStates = append(activeStates, string(s))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"transitions":   transitions,
		"final_states":  finalStates,
		"active_states": activeStates,
	})
}

func (h *StatusHandler) GetNextOptions(c *gin.Context) {
	current := models.OrderStatus(c.Param("current"))
	c.JSON(http.StatusOK, models.NextStatusOptions(current))
}

func (h *StatusHandler) ValidateStatus(c *gin.Context) {
	status := models.OrderStatus(c.Param("status"))

	validStatuses := make([]string, 0, 5)
	for _, s := range models.AllStatuses() {
		validStatuses = append(validStatuses, string(s))
	}

	result := gin.H{
		"status":         string(status),
		"is_valid":       models.IsValidStatus(status),
		"valid_statuses": validStatuses,
	}
	if models.IsValidStatus(status) {
		result["is_final"] = models.IsFinalStatus(status)
		result["is_active"] = !models.IsDeliveredStatus(status)
	}
	c.JSON(http.StatusOK, result)
}
