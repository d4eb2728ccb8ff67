package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edumart/edumart-back/docs"
	"github.com/edumart/edumart-back/internal/auth"
	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/db"
)

// @title           EduMart API
// @version         1.0
// @description     Backend for the EduMart learning marketplace.
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config) *gin.Engine {
	auth.InitGoogle(cfg)

	r := gin.Default()

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/jwt", auth.TokenHandler(cfg))
	r.GET("/auth/google/login", auth.GoogleLoginHandler())
	r.GET("/auth/google/callback", auth.GoogleCallbackHandler(cfg))

	r.POST("/users", RegisterUser)
	r.GET("/classes", ListApprovedClasses)
	r.GET("/classes/:id", GetClass)
	r.GET("/feedback", ListFeedback)

	// Authenticated
	authGroup := r.Group("/")
	authGroup.Use(auth.RequireAuth(cfg))
	{
		authGroup.GET("/users/admin/:email", CheckAdmin)
		authGroup.GET("/users/teacher/:email", CheckTeacher)

		authGroup.POST("/teacher-requests", SubmitTeacherRequest(cfg))
		authGroup.GET("/teacher-requests/:email", GetTeacherRequest)

		authGroup.POST("/classes", ProposeClass)
		authGroup.GET("/classes/teacher/:email", ListClassesByTeacher)
		authGroup.PATCH("/classes/:id", UpdateClass)
		authGroup.DELETE("/classes/:id", DeleteClass)

		authGroup.POST("/assignments", CreateAssignment)
		authGroup.GET("/classes/:id/assignments", ListAssignmentsByClass)
		authGroup.PATCH("/assignments/:id/submit", RecordSubmission)

		authGroup.POST("/create-payment-intent", CreatePaymentIntent)
		authGroup.POST("/payments", RecordPayment)
		authGroup.GET("/payments/:email", ListPaymentsByEmail)
		authGroup.GET("/enrolled-classes/:email", ListEnrolledClasses)

		authGroup.POST("/feedback", SubmitFeedback)
	}

	// Admin only
	adminGroup := r.Group("/")
	adminGroup.Use(auth.RequireAuth(cfg), auth.RequireAdmin())
	{
		adminGroup.GET("/users", ListUsers)
		adminGroup.DELETE("/users/:id", DeleteUser)
		adminGroup.PATCH("/users/:id/role", UpdateUserRole)

		adminGroup.GET("/teacher-requests", ListTeacherRequests)
		adminGroup.PATCH("/teacher-requests/:id/approve", ApproveTeacherRequest)
		adminGroup.PATCH("/teacher-requests/:id/reject", RejectTeacherRequest)

		adminGroup.GET("/classes/all", ListAllClasses)
		adminGroup.PATCH("/classes/:id/approve", ApproveClass)
		adminGroup.PATCH("/classes/:id/reject", RejectClass)

		adminGroup.GET("/admin/reports/payments", ExportPaymentsReport)
	}

	return r
}
