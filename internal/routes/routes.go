package routes

import (
	"rage-order-backend/internal/handlers"
	"rage-order-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		// MODULE ORDER (jalur utama submission + rekap)
		orders := api.Group("/orders")
		{
			orders.GET("", handlers.GetOrders)
			orders.POST("", handlers.SubmitOrders)
			orders.GET("/member/:id", handlers.GetOrdersByMember)
			orders.GET("/totals", handlers.GetItemTotals)
			orders.POST("/notify", handlers.NotifyDiscord)
		}

		// MODULE MEMBER
		api.GET("/members", handlers.GetMembers)

		// MODULE WINDOW (baca bebas, frontend butuh buat countdown)
		windows := api.Group("/windows")
		{
			windows.GET("", handlers.GetWindows)
			windows.GET("/active", handlers.GetActiveWindow)
		}

		// MODULE AUTH
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// MODULE DASHBOARD (rekap per member)
		api.GET("/dashboard", handlers.GetDashboard)

		// PROTECTED ROUTES: kelola member & window harus login admin
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/members", handlers.AddMember)
			protected.POST("/windows", handlers.CreateWindow)
			protected.PUT("/windows/:id", handlers.UpdateWindow)
			protected.DELETE("/windows/:id", handlers.DeleteWindow)
		}
	}
}
