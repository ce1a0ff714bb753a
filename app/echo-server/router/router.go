package router

import (
	"souqStore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)

	api.GET("/categories", handler.GetCategories)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	api.GET("/products/:id/suggestions", handler.GetSuggestions)
	api.GET("/associations", handler.GetAssociations)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler) {
	orders := api.Group("/orders")

	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.GetAllOrders)
	orders.GET("/:id", ordersHandler.GetOrderByID)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	users := api.Group("/users")

	users.GET("", handler.GetAllUsers)
	users.GET("/:id", handler.GetUserByID)
	users.POST("", handler.CreateUser)
	users.PUT("/:id", handler.UpdateUser)
	users.DELETE("/:id", handler.DeleteUser)
}
