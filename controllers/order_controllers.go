package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
	"github.com/Afzal-gif888/campus-cafe-mate/stores"
	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

type OrderController struct {
	Orders  *stores.Orders
	Catalog *stores.Catalog
}

func NewOrderController(orders *stores.Orders, catalog *stores.Catalog) *OrderController {
	return &OrderController{Orders: orders, Catalog: catalog}
}

// GetAllOrders -> every order, for the admin dashboard.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListAll()
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetMyOrders -> the calling student's orders.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	studentID := c.GetString("userID")

	orders, err := oc.Orders.ListByStudent(studentID)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Your orders", orders)
}

// CreateOrder -> checkout. The request carries the cart lines by menu
// item ID; the catalog is consulted for the current item data, which is
// then frozen into the order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type lineReq struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,gte=1"`
	}
	var req struct {
		StudentMobile string    `json:"studentMobile" binding:"required"`
		Items         []lineReq `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := models.NewCart()
	for _, line := range req.Items {
		item, err := oc.Catalog.Get(line.MenuItemID)
		if err != nil {
			utils.RespondStoreError(c, err)
			return
		}
		if !item.Available {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("%s is not available right now", item.Name))
			return
		}
		cart.Add(item, line.Quantity)
	}
	if cart.Empty() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	order, err := oc.Orders.Create(c.GetString("userID"), c.GetString("userName"), req.StudentMobile, cart.Items())
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s placed by %s, total %.2f", order.ID, order.StudentID, order.Total)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// UpdateOrderStatus -> admin drives the fulfillment lifecycle.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("order_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s -> %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
