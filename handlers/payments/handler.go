package payments

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/entitlement"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary List subscription plans
// @Description All active subscription plans
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SubscriptionPlan "List of plans"
// @Failure 500 {object} map[string]string "error: Error retrieving plans"
// @Router /payments/plans [get]
func GetSubscriptionPlans(c *gin.Context) {
	var plans []models.SubscriptionPlan
	if err := db.DB.Where("is_active = ?", true).Order("duration_days ASC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving plans: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// @Summary Get the active subscription
// @Description The caller's active subscription with its plan, if any
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "subscription and plan, or null"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving subscription"
// @Router /payments/subscription [get]
func GetUserSubscription(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var subscription models.Subscription
	err := db.DB.
		Where("patient_id = ? AND status = ? AND end_date >= ?", userID, models.SubscriptionActive, time.Now()).
		Order("end_date DESC").
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"subscription": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving subscription: " + err.Error()})
		return
	}

	var plan models.SubscriptionPlan
	if err := db.DB.Where("id = ?", subscription.PlanID).First(&plan).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading plan in GetUserSubscription")
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription, "plan": plan})
}

// @Summary Create a one-time payment order
// @Description Create a Razorpay order for a single appointment credit and a pending payment row
// @Tags payments
// @Accept json
// @Produce json
// @Param order body models.SinglePaymentOrderCreate true "Order information (amount in rupees)"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "paymentId, razorpayOrderId, amount, currency"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 502 {object} map[string]string "error: Payment gateway unavailable"
// @Router /payments/orders/single [post]
func CreateSinglePaymentOrder(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.SinglePaymentOrderCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	amountPaise := input.Amount * 100

	// Razorpay caps receipts at 40 characters.
	receipt := "single_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	orderID, err := utils.CreateRazorpayOrder(amountPaise, receipt, map[string]interface{}{
		"paymentType": "single",
		"userId":      userID.(string),
		"notes":       input.Notes,
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating Razorpay order in CreateSinglePaymentOrder")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create payment order"})
		return
	}

	payment := models.Payment{
		PatientID:       userID.(string),
		Amount:          amountPaise,
		PaymentMethod:   "razorpay",
		PaymentType:     models.PaymentTypeSingle,
		Status:          models.PaymentPending,
		RazorpayOrderID: orderID,
		Notes:           input.Notes,
	}
	if err := db.DB.Create(&payment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating payment row in CreateSinglePaymentOrder")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording payment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"paymentId":       payment.ID,
		"razorpayOrderId": orderID,
		"amount":          amountPaise,
		"currency":        "INR",
	})
}

// @Summary Create a subscription payment order
// @Description Create a Razorpay order for a subscription plan and a pending payment row
// @Tags payments
// @Accept json
// @Produce json
// @Param order body models.SubscriptionOrderCreate true "Order information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "paymentId, razorpayOrderId, amount, currency, planName"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Subscription plan not found"
// @Failure 502 {object} map[string]string "error: Payment gateway unavailable"
// @Router /payments/orders/subscription [post]
func CreateSubscriptionOrder(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.SubscriptionOrderCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	var plan models.SubscriptionPlan
	if err := db.DB.Where("id = ? AND is_active = ?", input.PlanID, true).First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription plan not found"})
		return
	}

	receipt := "subscription_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	orderID, err := utils.CreateRazorpayOrder(plan.Price, receipt, map[string]interface{}{
		"paymentType": "subscription",
		"userId":      userID.(string),
		"planId":      plan.ID,
		"notes":       input.Notes,
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating Razorpay order in CreateSubscriptionOrder")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create payment order"})
		return
	}

	payment := models.Payment{
		PatientID:          userID.(string),
		Amount:             plan.Price,
		PaymentMethod:      "razorpay",
		PaymentType:        models.PaymentTypeSubscription,
		SubscriptionPlanID: &plan.ID,
		Status:             models.PaymentPending,
		RazorpayOrderID:    orderID,
		Notes:              input.Notes,
	}
	if err := db.DB.Create(&payment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating payment row in CreateSubscriptionOrder")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording payment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"paymentId":       payment.ID,
		"razorpayOrderId": orderID,
		"amount":          plan.Price,
		"currency":        "INR",
		"planName":        plan.Name,
	})
}

// @Summary Verify a payment
// @Description Verify the gateway signature and grant the entitlement (mark the payment completed; create the subscription for subscription payments). This is the only path that grants entitlement.
// @Tags payments
// @Accept json
// @Produce json
// @Param verification body models.PaymentVerify true "Gateway confirmation fields"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "paymentType and, for subscriptions, the subscription"
// @Failure 400 {object} map[string]string "error: Invalid payment signature"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Payment record not found"
// @Failure 500 {object} map[string]string "error: Error completing payment"
// @Router /payments/verify [post]
func VerifyPayment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.PaymentVerify
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if !utils.VerifyRazorpaySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature) {
		utils.LogErrorWithUser(userID, nil, "Invalid payment signature in VerifyPayment")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
		return
	}

	var subscription *models.Subscription
	var payment models.Payment

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("id = ? AND patient_id = ? AND razorpay_order_id = ? AND status = ?",
				input.PaymentID, userID, input.RazorpayOrderID, models.PaymentPending).
			First(&payment).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Updates(map[string]interface{}{
				"status":              models.PaymentCompleted,
				"razorpay_payment_id": input.RazorpayPaymentID,
				"razorpay_signature":  input.RazorpaySignature,
				"updated_at":          time.Now(),
			}).Error
		if err != nil {
			return err
		}

		if payment.PaymentType != models.PaymentTypeSubscription || payment.SubscriptionPlanID == nil {
			return nil
		}

		var plan models.SubscriptionPlan
		if err := tx.Where("id = ?", *payment.SubscriptionPlanID).First(&plan).Error; err != nil {
			return fmt.Errorf("subscription plan not found: %w", err)
		}

		start := time.Now()
		sub := models.Subscription{
			PatientID: userID.(string),
			PlanID:    plan.ID,
			Status:    models.SubscriptionActive,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, plan.DurationDays),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}

		err = tx.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Updates(map[string]interface{}{"subscription_id": sub.ID, "updated_at": time.Now()}).Error
		if err != nil {
			return err
		}

		subscription = &sub
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment record not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error completing payment in VerifyPayment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error completing payment: " + err.Error()})
		return
	}

	go sendReceiptMail(userID.(string), payment.Amount, string(payment.PaymentType))

	utils.LogSuccessWithUser(userID, "Payment verified and completed")
	if subscription != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"paymentType":  models.PaymentTypeSubscription,
			"subscription": subscription,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"paymentType": models.PaymentTypeSingle,
	})
}

// @Summary Check payment status
// @Description The caller's entitlement: active subscription, or usable single payments and the credit sum
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "hasActivePayment, paymentType, remainingAppointments"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error checking payment status"
// @Router /payments/status [get]
func CheckPaymentStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := entitlement.Evaluate(db.DB, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking payment status: " + err.Error()})
		return
	}

	switch result.Kind {
	case entitlement.KindSubscription:
		c.JSON(http.StatusOK, gin.H{
			"hasActivePayment": true,
			"paymentType":      models.PaymentTypeSubscription,
			"subscription":     result.Subscription,
			"unlimited":        true,
		})
	case entitlement.KindSingle:
		var usable []models.Payment
		err := db.DB.
			Where("patient_id = ? AND payment_type = ? AND status = ? AND remaining_appointments > 0",
				userID, models.PaymentTypeSingle, models.PaymentCompleted).
			Order("created_at ASC").
			Find(&usable).Error
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error loading usable payments in CheckPaymentStatus")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking payment status: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"hasActivePayment":      true,
			"paymentType":           models.PaymentTypeSingle,
			"payments":              usable,
			"remainingAppointments": result.Remaining,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"hasActivePayment":      false,
			"remainingAppointments": 0,
		})
	}
}

// @Summary Can the caller book
// @Description Boolean used by the booking sheet to route to the payment flow
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "canBook, paymentType, message"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error checking entitlement"
// @Router /payments/can-book [get]
func CanBookAppointment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := entitlement.Evaluate(db.DB, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking entitlement: " + err.Error()})
		return
	}

	switch result.Kind {
	case entitlement.KindSubscription:
		c.JSON(http.StatusOK, gin.H{
			"canBook":     true,
			"paymentType": models.PaymentTypeSubscription,
			"message":     "You have an active subscription",
		})
	case entitlement.KindSingle:
		c.JSON(http.StatusOK, gin.H{
			"canBook":               true,
			"paymentType":           models.PaymentTypeSingle,
			"remainingAppointments": result.Remaining,
			"message":               fmt.Sprintf("You can book %d more appointment(s)", result.Remaining),
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"canBook": false,
			"message": "You need to make a payment to book an appointment",
		})
	}
}

// @Summary Cancel the active subscription
// @Description Mark the caller's active subscription canceled; entitlement ends immediately
// @Tags payments
// @Accept json
// @Produce json
// @Param cancellation body models.SubscriptionCancel false "Cancellation reason"
// @Security BearerAuth
// @Success 200 {object} models.Subscription "Canceled subscription"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: No active subscription"
// @Failure 500 {object} map[string]string "error: Error canceling subscription"
// @Router /payments/subscription/cancel [post]
func CancelSubscription(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.SubscriptionCancel
	_ = c.ShouldBindJSON(&input)

	var subscription models.Subscription
	err := db.DB.
		Where("patient_id = ? AND status = ? AND end_date >= ?", userID, models.SubscriptionActive, time.Now()).
		Order("end_date DESC").
		First(&subscription).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":        models.SubscriptionCanceled,
		"canceled_at":   now,
		"cancel_reason": input.Reason,
		"auto_renew":    false,
	}
	if err := db.DB.Model(&subscription).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error canceling subscription in CancelSubscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error canceling subscription: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription canceled")
	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

func sendReceiptMail(patientID string, amount int64, paymentType string) {
	if db.DB == nil {
		return
	}
	var patient models.User
	if err := db.DB.Where("id = ?", patientID).First(&patient).Error; err != nil {
		return
	}
	utils.SendMail(patient.Email, utils.PaymentReceiptMail(patient.Email, amount, paymentType))
}
