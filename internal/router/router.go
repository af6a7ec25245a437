package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stylehub_dev_v1_202601/internal/controller"
	"stylehub_dev_v1_202601/internal/middleware"
	"stylehub_dev_v1_202601/internal/model"

	_ "stylehub_dev_v1_202601/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Auth      *controller.AuthController
	Product   *controller.ProductController
	Inventory *controller.InventoryController
	Order     *controller.OrderController
	Dashboard *controller.DashboardController
}

// SetupRouter 注册所有路由
func SetupRouter(ctl *Controllers) *gin.Engine {
	r := gin.Default()

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// auth 鉴权组
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", ctl.Auth.Login)
			auth.POST("/refresh", ctl.Auth.RefreshToken)
			auth.POST("/logout", middleware.JWTAuth(), ctl.Auth.Logout)
			auth.GET("/me", middleware.JWTAuth(), ctl.Auth.Me)
		}

		// 门店公开读
		api.GET("/products", ctl.Product.GetProducts)
		api.GET("/products/:id", ctl.Product.GetProduct)
		api.GET("/categories", ctl.Product.GetCategories)
		api.GET("/reviews", ctl.Product.GetReviews)

		// 管理组：admin/staff 才能做商品/库存/订单管理
		manage := api.Group("")
		manage.Use(
			middleware.JWTAuth(),
			middleware.RequireRole(model.RoleAdmin, model.RoleStaff),
			middleware.AuditContext(),
		)
		{
			// 商品管理
			manage.POST("/products", ctl.Product.CreateProduct)
			manage.PUT("/products/:id", ctl.Product.UpdateProduct)
			manage.DELETE("/products/:id", ctl.Product.DeleteProduct)

			// 库存管理
			manage.GET("/inventory", ctl.Inventory.GetInventory)
			manage.GET("/inventory/low-stock", ctl.Inventory.GetLowStock)
			manage.PUT("/inventory/:product_id", ctl.Inventory.UpdateInventory)

			// 订单管理
			manage.GET("/orders", ctl.Order.GetOrders)
			manage.GET("/orders/:id", ctl.Order.GetOrder)
			manage.POST("/orders", ctl.Order.CreateOrder)
			manage.PUT("/orders/:id/status", ctl.Order.UpdateOrderStatus)
		}

		// 看板组：只放行 admin
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.JWTAuth(), middleware.RequireRole(model.RoleAdmin))
		{
			dashboard.GET("/stats", ctl.Dashboard.GetStats)
			dashboard.GET("/audit-logs", ctl.Dashboard.GetAuditLogs)
		}
	}

	return r
}
