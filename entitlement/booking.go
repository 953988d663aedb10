package entitlement

import (
	"context"
	"errors"
	"time"

	"github.com/Jaydip614/medisync/models"

	"gorm.io/gorm"
)

// Service runs booking transactions against the shared store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// BookingRequest carries everything needed to create one appointment.
// PaymentID optionally names the funding payment; when empty the oldest
// completed single payment with credits left is used.
type BookingRequest struct {
	PatientID string
	DoctorID  string
	Date      time.Time
	Notes     string
	Severity  models.SeverityLevel
	PaymentID *string
}

// Book converts one unit of entitlement into an appointment and its chat
// room, or fails leaving the store unchanged. Everything runs in a single
// transaction; the entitlement is re-evaluated inside it so a stale check
// can never over-spend a credit.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	var appointment *models.Appointment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient models.User
		if err := tx.Where("id = ?", req.PatientID).First(&patient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatientNotFound
			}
			return err
		}

		var fundingPaymentID *string

		// One retry: a concurrent booking may spend the credit between the
		// evaluation and the guarded decrement.
		for attempt := 0; ; attempt++ {
			result, err := Evaluate(tx, req.PatientID)
			if err != nil {
				return err
			}

			switch result.Kind {
			case KindNone:
				paid, err := hasCompletedSinglePayment(tx, req.PatientID)
				if err != nil {
					return err
				}
				if !paid {
					return ErrNoPayment
				}
				return ErrEntitlementExhausted

			case KindSubscription:
				// Unlimited, nothing to decrement.

			case KindSingle:
				payment, err := s.pickFundingPayment(tx, req)
				if err != nil {
					return err
				}

				res := tx.Model(&models.Payment{}).
					Where("id = ? AND remaining_appointments > 0", payment.ID).
					Updates(map[string]interface{}{
						"remaining_appointments": gorm.Expr("remaining_appointments - 1"),
						"updated_at":             time.Now(),
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					if attempt == 0 {
						continue
					}
					// Still conflicting after the retry: report exhaustion
					// rather than risking a double spend.
					return ErrEntitlementExhausted
				}
				fundingPaymentID = &payment.ID
			}

			severity := req.Severity
			if severity == "" {
				severity = models.SeverityLow
			}

			appt := models.Appointment{
				PatientID: req.PatientID,
				DoctorID:  req.DoctorID,
				Date:      req.Date,
				Notes:     req.Notes,
				Severity:  severity,
				Status:    models.AppointmentScheduled,
				PaymentID: fundingPaymentID,
			}
			if err := tx.Create(&appt).Error; err != nil {
				return err
			}

			room := models.ChatRoom{
				AppointmentID: appt.ID,
				PatientID:     req.PatientID,
				DoctorID:      req.DoctorID,
			}
			if err := tx.Create(&room).Error; err != nil {
				return err
			}

			appointment = &appt
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// pickFundingPayment chooses the payment row to decrement: the caller's
// choice if it is usable, otherwise the oldest completed single payment
// with credits left. The deterministic order keeps concurrent bookings
// contending on the same row instead of double-spending different ones.
func (s *Service) pickFundingPayment(tx *gorm.DB, req BookingRequest) (*models.Payment, error) {
	if req.PaymentID != nil {
		var chosen models.Payment
		err := tx.
			Where("id = ? AND patient_id = ? AND payment_type = ? AND status = ? AND remaining_appointments > 0",
				*req.PaymentID, req.PatientID, models.PaymentTypeSingle, models.PaymentCompleted).
			First(&chosen).Error
		if err == nil {
			return &chosen, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Fall through: the named payment is unusable, spend the oldest one.
	}

	var oldest models.Payment
	err := tx.
		Where("patient_id = ? AND payment_type = ? AND status = ? AND remaining_appointments > 0",
			req.PatientID, models.PaymentTypeSingle, models.PaymentCompleted).
		Order("created_at ASC").
		First(&oldest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntitlementExhausted
		}
		return nil, err
	}
	return &oldest, nil
}
