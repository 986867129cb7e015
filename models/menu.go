package models

// Menu item categories.
const (
	CategoryCoffee = "coffee"
	CategoryTea    = "tea"
	CategorySnacks = "snacks"
	CategoryMeals  = "meals"
)

// MenuItem is a purchasable item in the cafe catalog.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

// MenuItemPatch carries a partial update for a menu item. Nil fields are
// left untouched by the merge.
type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Category    *string  `json:"category" binding:"omitempty,oneof=coffee tea snacks meals"`
	Image       *string  `json:"image"`
	Available   *bool    `json:"available"`
}

// Apply merges the patch onto the item.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Available != nil {
		item.Available = *p.Available
	}
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryCoffee, CategoryTea, CategorySnacks, CategoryMeals:
		return true
	}
	return false
}
