package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/auth"
	"github.com/Afzal-gif888/campus-cafe-mate/controllers"
	"github.com/Afzal-gif888/campus-cafe-mate/middlewares"
	"github.com/Afzal-gif888/campus-cafe-mate/models"
	"github.com/Afzal-gif888/campus-cafe-mate/stores"
)

func SetupRouter(catalog *stores.Catalog, orders *stores.Orders, verifier auth.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(verifier)
	menuCtrl := controllers.NewMenuController(catalog)
	orderCtrl := controllers.NewOrderController(orders, catalog)
	adminCtrl := controllers.NewAdminController(orders)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	// Menu browsing needs no login so the counter display can use it too.
	r.GET("/menus", menuCtrl.GetAllMenus)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.POST("/orders", orderCtrl.CreateOrder)
		authed.GET("/orders/my", orderCtrl.GetMyOrders)

		admin := authed.Group("/")
		admin.Use(middlewares.RequireRole(models.RoleAdmin))
		{
			admin.POST("/menus", menuCtrl.CreateMenu)
			admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
			admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

			admin.GET("/orders", orderCtrl.GetAllOrders)
			admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

			admin.GET("/admin/stats", adminCtrl.GetDashboardStats)
		}
	}

	return r
}
