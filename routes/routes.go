package routes

import (
	"bbq-ordering-api/handlers"
	"bbq-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed; search logging kicks in when a token is present)
		public.GET("/products", middleware.AuthOptional(), handlers.ListProducts)
		public.GET("/products/:id", middleware.AuthOptional(), handlers.GetProduct)
		public.GET("/search/suggestions", middleware.RateLimit("60-M"), handlers.SearchSuggestions)

		// Blog & feedback
		public.GET("/articles", handlers.ListArticles)
		public.GET("/feedback", handlers.ListFeedback)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Cart & checkout
		auth.GET("/cart", handlers.ViewCart)
		auth.POST("/cart/items/:productId", handlers.AddToCart)
		auth.PUT("/cart/items/:itemId", handlers.UpdateCartItem)
		auth.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
		auth.POST("/checkout", handlers.Checkout)

		// Orders
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PUT("/orders/:id", handlers.UpdateOrder)
		auth.DELETE("/orders/:id", handlers.DeleteOrder)
		auth.POST("/orders/:id/items", handlers.AddOrderItem)
		auth.DELETE("/orders/:id/items/:itemId", handlers.RemoveOrderItem)
		auth.GET("/orders/:id/tracking", handlers.GetOrderTracking)

		// Reservations
		auth.GET("/reservations", handlers.ListReservations)
		auth.POST("/reservations", handlers.CreateReservation)
		auth.PUT("/reservations/:id", handlers.UpdateReservation)
		auth.DELETE("/reservations/:id", handlers.DeleteReservation)

		// Journal
		auth.GET("/journal", handlers.ListJournalEntries)
		auth.POST("/journal", handlers.CreateJournalEntry)
		auth.PUT("/journal/:id", handlers.UpdateJournalEntry)
		auth.DELETE("/journal/:id", handlers.DeleteJournalEntry)

		// Feedback & activity history
		auth.POST("/feedback", handlers.SubmitFeedback)
		auth.GET("/history", handlers.GetUserHistory)
		auth.DELETE("/history/:id", handlers.DeleteHistoryEntry)
		auth.DELETE("/history", handlers.ClearUserHistory)
	}

	// ── Staff routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.StaffRequired())
	{
		// Order management (shared handlers; staff bypass the edit lock)
		admin.PUT("/orders/:id/tracking", handlers.UpdateTracking)

		// Payments
		admin.GET("/payments", handlers.ListPayments)
		admin.POST("/orders/:id/payments", handlers.CreatePayment)
		admin.PUT("/payments/:id", handlers.UpdatePayment)

		// Invoices
		admin.GET("/invoices", handlers.ListInvoices)
		admin.POST("/orders/:id/invoice", handlers.GenerateInvoice)
		admin.GET("/invoices/:id", handlers.GetInvoice)
		admin.PUT("/invoices/:id", handlers.UpdateInvoice)

		// Stock
		admin.GET("/stock", handlers.StockOverview)
		admin.PUT("/stock/:id", handlers.UpdateStock)

		// Blog
		admin.POST("/articles", handlers.CreateArticle)
		admin.PUT("/articles/:id", handlers.UpdateArticle)
		admin.DELETE("/articles/:id", handlers.DeleteArticle)
	}
}
