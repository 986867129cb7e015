package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
	"github.com/Afzal-gif888/campus-cafe-mate/stores"
	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

type MenuController struct {
	Catalog *stores.Catalog
}

func NewMenuController(catalog *stores.Catalog) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetAllMenus -> list menu items; ?available=true narrows to what
// students can order right now.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var (
		items []models.MenuItem
		err   error
	)
	if c.Query("available") == "true" {
		items, err = mc.Catalog.ListAvailable()
	} else {
		items, err = mc.Catalog.ListAll()
	}
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenu -> add a menu item (admin)
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required,gte=0"`
		Category    string  `json:"category" binding:"required,oneof=coffee tea snacks meals"`
		Image       string  `json:"image"`
		Available   bool    `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Catalog.Create(models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available,
	})
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (%s)", item.Name, item.ID)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenu -> partial update of a menu item (admin)
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id := c.Param("menu_id")

	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Catalog.Update(id, patch)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenu -> remove a menu item (admin). Deleting twice is fine.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id := c.Param("menu_id")

	if err := mc.Catalog.Delete(id); err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}
