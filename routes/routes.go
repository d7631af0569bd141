package routes

import (
	"eyedea-api/controllers"
	"eyedea-api/middleware"
	"eyedea-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		public := api.Group("")
		{
			// Authentication
			public.POST("/auth/register", controllers.Register)
			public.POST("/auth/login", controllers.Login)
			public.POST("/auth/forgot-password", controllers.ForgotPassword)
			public.POST("/auth/reset-password", controllers.ResetPassword)

			// Taxonomy for the registration form
			public.GET("/public/pillars", controllers.GetPillars)
			public.GET("/public/departments", controllers.GetDepartments)
			public.GET("/public/teams", controllers.GetTeams)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Eye-dea API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth management
			protected.GET("/auth/me", controllers.GetMe)
			protected.POST("/auth/set-sub-role", controllers.SetSubRole)
			protected.PUT("/auth/change-password", controllers.ChangePassword)

			// Taxonomy lookups (all authenticated users)
			protected.GET("/pillars", controllers.GetPillars)
			protected.GET("/departments", controllers.GetDepartments)
			protected.GET("/teams", controllers.GetTeams)
			protected.GET("/tech-persons", controllers.GetTechPersons)

			// Ideas
			ideas := protected.Group("/ideas")
			{
				ideas.GET("", controllers.GetIdeas)
				ideas.POST("", controllers.CreateIdea)
				ideas.GET("/:id", controllers.GetIdea)
				ideas.PUT("/:id", controllers.UpdateIdea)
				ideas.DELETE("/:id", controllers.DeleteIdea)

				// Review workflow (approvers; scope checked per idea)
				ideas.POST("/:id/approve", controllers.ApproveIdea)
				ideas.POST("/:id/decline", controllers.DeclineIdea)
				ideas.POST("/:id/request-revision", controllers.RequestRevision)
				ideas.POST("/:id/resubmit", controllers.ResubmitIdea)

				// C.I. Excellence
				ideas.POST("/:id/ci-evaluate", controllers.CIEvaluateIdea)
				ideas.POST("/:id/ci-update-status", controllers.CIUpdateStatus)
				ideas.POST("/:id/mark-best-idea", controllers.MarkBestIdea)
				ideas.POST("/:id/set-best-idea", controllers.SetBestIdea)

				// Comments
				ideas.GET("/:id/comments", controllers.GetComments)
				ideas.POST("/:id/comments", controllers.AddComment)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
				dashboard.GET("/analytics", controllers.GetDashboardAnalytics)
				dashboard.GET("/export-excel", controllers.ExportIdeasExcel)
			}

			// Admin
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", controllers.GetUsers)
				admin.PUT("/users/:id", controllers.UpdateUser)
				admin.DELETE("/users/:id", controllers.DeleteUser)
				admin.POST("/users/bulk-upload", controllers.BulkUploadUsers)

				admin.GET("/pillars", controllers.GetPillars)
				admin.POST("/pillars", controllers.CreatePillar)
				admin.PUT("/pillars/:id", controllers.UpdatePillar)
				admin.DELETE("/pillars/:id", controllers.DeletePillar)

				admin.GET("/departments", controllers.GetDepartments)
				admin.POST("/departments", controllers.CreateDepartment)
				admin.PUT("/departments/:id", controllers.UpdateDepartment)
				admin.DELETE("/departments/:id", controllers.DeleteDepartment)

				admin.GET("/teams", controllers.GetTeams)
				admin.POST("/teams", controllers.CreateTeam)
				admin.PUT("/teams/:id", controllers.UpdateTeam)
				admin.DELETE("/teams/:id", controllers.DeleteTeam)

				admin.GET("/tech-persons", controllers.GetTechPersons)
				admin.POST("/tech-persons", controllers.CreateTechPerson)
				admin.PUT("/tech-persons/:id", controllers.UpdateTechPerson)
				admin.DELETE("/tech-persons/:id", controllers.DeleteTechPerson)
			}
		}
	}
}
