package routes

import (
	"bistro-backend/controllers"
	"bistro-backend/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	menuCtrl := controllers.NewMenuController()
	orderCtrl := controllers.NewOrderController()
	reservationCtrl := controllers.NewReservationController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/:id", menuCtrl.GetMenuItem)

	router.POST("/orders", orderCtrl.PlaceOrder)
	router.GET("/orders/track", orderCtrl.TrackOrder)
	router.POST("/orders/cancel", orderCtrl.CancelOrder)

	router.GET("/reservations/availability", reservationCtrl.GetAvailability)
	router.POST("/reservations", reservationCtrl.CreateReservation)
	router.GET("/reservations/track", reservationCtrl.TrackReservation)
	router.POST("/reservations/cancel", reservationCtrl.CancelReservation)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/menu", menuCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PATCH("/reservations/:id/status", reservationCtrl.UpdateReservationStatus)
	}
}
