package stores

import "github.com/Afzal-gif888/campus-cafe-mate/models"

// DefaultCatalog is the fixed menu the catalog seeds itself with on
// first access.
func DefaultCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Cappuccino", Description: "Rich espresso with steamed milk and foam", Price: 45, Category: models.CategoryCoffee, Image: "/api/placeholder/200/150", Available: true},
		{ID: "2", Name: "Latte", Description: "Smooth espresso with steamed milk", Price: 50, Category: models.CategoryCoffee, Image: "/api/placeholder/200/150", Available: true},
		{ID: "3", Name: "Black Coffee", Description: "Pure coffee for the purists", Price: 35, Category: models.CategoryCoffee, Image: "/api/placeholder/200/150", Available: true},
		{ID: "4", Name: "Masala Tea", Description: "Traditional spiced tea", Price: 20, Category: models.CategoryTea, Image: "/api/placeholder/200/150", Available: true},
		{ID: "5", Name: "Green Tea", Description: "Healthy and refreshing", Price: 25, Category: models.CategoryTea, Image: "/api/placeholder/200/150", Available: true},
		{ID: "6", Name: "Samosa", Description: "Crispy vegetable samosa", Price: 15, Category: models.CategorySnacks, Image: "/api/placeholder/200/150", Available: true},
		{ID: "7", Name: "Sandwich", Description: "Grilled veg sandwich", Price: 40, Category: models.CategorySnacks, Image: "/api/placeholder/200/150", Available: true},
		{ID: "8", Name: "Biryani", Description: "Aromatic rice with vegetables", Price: 80, Category: models.CategoryMeals, Image: "/api/placeholder/200/150", Available: true},
	}
}
