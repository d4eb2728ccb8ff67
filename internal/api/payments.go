package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
	"github.com/edumart/edumart-back/internal/payments"
	"github.com/edumart/edumart-back/internal/report"
)

// PaymentIntentRequest carries the amount in the smallest currency unit.
type PaymentIntentRequest struct {
	Price *int64 `json:"price" binding:"required"`
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent
// @Description  Returns the processor's client secret for the given amount
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  PaymentIntentRequest  true  "Amount"
// @Success      200   {object} map[string]string
// @Failure      400   {object} map[string]string
// @Failure      500   {object} map[string]string
// @Security     BearerAuth
// @Router       /create-payment-intent [post]
func CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil || *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	clientSecret, err := payments.CreateIntent(*req.Price)
	if err != nil {
		log.Error().Err(err).Msg("payment intent creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// PaymentInput is the body for recording a completed payment.
type PaymentInput struct {
	Email   string `json:"email" binding:"required,email"`
	ClassID uint   `json:"class_id" binding:"required"`
	Amount  *int64 `json:"amount" binding:"required"`
	OpKey   string `json:"op_key"`
}

// RecordPayment godoc
// @Summary      Record a payment
// @Description  Inserts the payment and bumps the class enrollment counter atomically
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  PaymentInput  true  "Payment"
// @Success      201   {object} models.Payment
// @Failure      400   {object} map[string]string
// @Failure      403   {object} map[string]string
// @Failure      404   {object} map[string]string
// @Security     BearerAuth
// @Router       /payments [post]
func RecordPayment(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if input.Email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	payment := models.Payment{
		OpKey:   input.OpKey,
		Email:   input.Email,
		ClassID: input.ClassID,
		Amount:  *input.Amount,
	}
	if err := db.RecordPayment(context.Background(), &payment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPaymentsByEmail godoc
// @Summary      List a user's payments
// @Description  Callers may only view their own history; admins may view anyone's
// @Tags         payments
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200 {array} models.Payment
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /payments/{email} [get]
func ListPaymentsByEmail(c *gin.Context) {
	email := c.Param("email")
	if !callerAllowed(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	list, err := db.ListPaymentsByEmail(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListEnrolledClasses godoc
// @Summary      List the classes a user has paid for
// @Description  Derived from the payments ledger; each class appears once
// @Tags         payments
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200 {array} models.Class
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /enrolled-classes/{email} [get]
func ListEnrolledClasses(c *gin.Context) {
	email := c.Param("email")
	if !callerAllowed(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	classes, err := db.ListEnrolledClasses(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ExportPaymentsReport godoc
// @Summary      Download the payments ledger as a spreadsheet
// @Tags         payments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /admin/reports/payments [get]
func ExportPaymentsReport(c *gin.Context) {
	list, err := db.ListAllPayments(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	f, err := report.PaymentsWorkbook(list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payments.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := f.WriteTo(c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to stream payments report")
	}
}
