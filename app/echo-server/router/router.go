package router

import (
	"plateRank/internal/middleware"
	"plateRank/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	items := api.Group("/items")

	items.GET("", handler.GetAllItems)
	items.GET("/:id", handler.GetItemByID)
	items.POST("", handler.CreateItem, authRequired, adminOnly)
	items.PUT("/:id", handler.UpdateItem, authRequired, adminOnly)
	items.DELETE("/:id", handler.DeleteItem, authRequired, adminOnly)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler) {
	orders := api.Group("/orders", middleware.AuthMiddleware())
	orders.POST("", ordersHandler.CreateOrderItem)
	orders.GET("", ordersHandler.GetAllOrders)
	orders.GET("/:id", ordersHandler.GetOrderByID)
	orders.PUT("/:id", ordersHandler.UpdateOrder)
	orders.DELETE("/:id", ordersHandler.DeleteOrder)
}

func SetRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations", middleware.OptionalAuth())
	reco.GET("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend)
	reco.POST("/feedback", handler.Feedback)
}

func SetRecommendAdminRoutes(api *echo.Group, handler *rest.RecommendAdminHandler) {
	admin := api.Group("/admin/reco", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/profile", handler.GetProfile)
	admin.PUT("/profile", handler.UpsertProfile)
	admin.GET("/segment", handler.GetSegment)
	admin.PUT("/segment", handler.UpsertSegment)
	admin.GET("/rules", handler.GetRules)
	admin.PUT("/rules", handler.ReplaceRules)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler) {
	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory)
	categories.PUT("/:id", handler.UpdateCategory)
	categories.DELETE("/:id", handler.DeleteCategory)
}
