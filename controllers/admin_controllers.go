package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
	"github.com/Afzal-gif888/campus-cafe-mate/stores"
	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

type AdminController struct {
	Orders *stores.Orders
}

func NewAdminController(orders *stores.Orders) *AdminController {
	return &AdminController{Orders: orders}
}

// GetDashboardStats -> order counts per status and completed revenue,
// the numbers on the admin dashboard header.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	orders, err := ac.Orders.ListAll()
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	counts := map[string]int{
		models.StatusPending:   0,
		models.StatusPreparing: 0,
		models.StatusReady:     0,
		models.StatusCompleted: 0,
		models.StatusCancelled: 0,
	}
	var revenue float64
	for _, order := range orders {
		counts[order.Status]++
		if order.Status == models.StatusCompleted {
			revenue += order.Total
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"total_orders": len(orders),
		"by_status":    counts,
		"revenue":      revenue,
	})
}
