package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	h "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/http/handlers"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		guarded := api.Group("")
		guarded.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		{
			// Trips
			trips := guarded.Group("/trips")
			trips.GET("", h.GetTrips)
			trips.GET("/:id", h.GetTripByID)
			trips.POST("", h.CreateTrip)
			trips.PUT("/:id", h.UpdateTrip)
			trips.POST("/quote", h.QuoteTrip)
			trips.POST("/:id/complete", h.CompleteTrip)
			trips.POST("/:id/cancel", h.CancelTrip)
			trips.GET("/:id/invoice", h.GetTripInvoicePDF)

			// Receivables & collections
			receivables := guarded.Group("/receivables")
			receivables.GET("", h.GetReceivables)
			receivables.GET("/:id", h.GetReceivableByID)
			receivables.POST("", h.CreateReceivable)
			receivables.POST("/:id/collections", h.CreateCollection)

			// Payables & settlements
			payables := guarded.Group("/payables")
			payables.GET("", h.GetPayables)
			payables.GET("/:id", h.GetPayableByID)
			payables.POST("", h.CreatePayable)
			payables.POST("/:id/settlements", h.CreateSettlement)

			// Parties & ledgers
			parties := guarded.Group("/parties")
			parties.GET("", h.GetParties)
			parties.POST("", h.CreateParty)
			parties.PUT("/:id", h.UpdateParty)
			guarded.GET("/clients/:id/ledger", h.GetClientLedger)
			guarded.GET("/vendors/:id/ledger", h.GetVendorLedger)

			// Staff & advances
			staff := guarded.Group("/staff")
			staff.GET("", h.GetStaff)
			staff.POST("", h.CreateStaff)
			staff.PUT("/:id", h.UpdateStaff)
			staff.POST("/:id/advances", h.GrantAdvance)
			staff.POST("/:id/recoveries", h.RecordRecovery)
			staff.GET("/:id/ledger", h.GetAdvanceLedger)
			staff.POST("/:id/exit", h.ExitStaff)

			// Payroll
			payroll := guarded.Group("/payroll")
			payroll.GET("", h.GetPayroll)
			payroll.POST("", h.GeneratePayroll)
			payroll.POST("/:id/pay", h.MarkPayrollPaid)
			payroll.GET("/:id/slip", h.GetPayrollSlipPDF)

			// Vehicles
			vehicles := guarded.Group("/vehicles")
			vehicles.GET("", h.GetVehicles)
			vehicles.POST("", h.CreateVehicle)
			vehicles.PUT("/:id", h.UpdateVehicle)

			// Reports
			reports := guarded.Group("/reports")
			reports.GET("/finance", h.GetFinanceReport)
			reports.GET("/finance/export", h.ExportFinanceReport)
		}
	}

	return r
}
