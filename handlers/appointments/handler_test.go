package appointments

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const (
	testPatientID     = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	testDoctorID      = "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
	testAppointmentID = "5e6f7a8b-9c0d-4e1f-2a3b-4c5d6e7f8a9b"
)

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(models.PatientRole))
		c.Next()
	}
}

func TestGetAppointments_Upcoming(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	date := time.Now().Add(72 * time.Hour)
	rows := mock.NewRows([]string{"id", "title", "doctor_name", "doctor_id", "specialization_id", "date", "status", "severity", "notes"}).
		AddRow(testAppointmentID, "Appointment", "Sarah", testDoctorID, nil, date, "scheduled", "low", "")

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" LEFT JOIN users ON users.id = appointments.doctor_id WHERE appointments.patient_id = (.+) AND appointments.date >= (.+)`).
		WithArgs(testPatientID, sqlmock.AnyArg(), 10).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/appointments", authAs(testPatientID), GetAppointments)

	req, _ := http.NewRequest(http.MethodGet, "/appointments?upcoming=true", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string][]AppointmentRow
	json.Unmarshal(resp.Body.Bytes(), &response)

	appointments := response["appointments"]
	assert.Len(t, appointments, 1)
	assert.Equal(t, "Sarah", appointments[0].DoctorName)
	assert.Equal(t, models.AppointmentScheduled, appointments[0].Status)
}

func TestBookAppointment_DoctorNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) AND role = (.+)`).
		WithArgs(testDoctorID, string(models.DoctorRole), 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/appointments", authAs(testPatientID), BookAppointment)

	body, _ := json.Marshal(map[string]interface{}{
		"doctorId": testDoctorID,
		"date":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	req, _ := http.NewRequest(http.MethodPost, "/appointments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response map[string]string
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "Doctor not found")
}

func TestBookAppointment_NoPaymentYieldsPaymentRequired(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) AND role = (.+)`).
		WithArgs(testDoctorID, string(models.DoctorRole), 1).
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "role"}).
			AddRow(testDoctorID, "Sarah", "doctor"))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs(testPatientID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "role"}).AddRow(testPatientID, "patient"))
	mock.ExpectQuery(`SELECT (.+) FROM "subscriptions" WHERE patient_id = (.+)`).
		WithArgs(testPatientID, string(models.SubscriptionActive), sqlmock.AnyArg(), 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT COALESCE(.+) FROM "payments" WHERE patient_id = (.+)`).
		WithArgs(testPatientID, string(models.PaymentTypeSingle), string(models.PaymentCompleted)).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(0))
	mock.ExpectQuery(`SELECT count(.+) FROM "payments" WHERE patient_id = (.+)`).
		WithArgs(testPatientID, string(models.PaymentTypeSingle), string(models.PaymentCompleted)).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/appointments", authAs(testPatientID), BookAppointment)

	body, _ := json.Marshal(map[string]interface{}{
		"doctorId": testDoctorID,
		"date":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	req, _ := http.NewRequest(http.MethodPost, "/appointments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusPaymentRequired, resp.Code)

	var response map[string]string
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "payment")
}

func TestUpdateAppointment_ForeignAppointmentLooksMissing(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(testAppointmentID, testPatientID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.PUT("/appointments/:id", authAs(testPatientID), UpdateAppointment)

	body, _ := json.Marshal(map[string]string{"status": "canceled"})

	req, _ := http.NewRequest(http.MethodPut, "/appointments/"+testAppointmentID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateAppointment_TerminalStatusRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(testAppointmentID, testPatientID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "patient_id", "doctor_id", "date", "status"}).
			AddRow(testAppointmentID, testPatientID, testDoctorID, time.Now(), "completed"))

	r := testutils.SetupTestRouter()
	r.PUT("/appointments/:id", authAs(testPatientID), UpdateAppointment)

	body, _ := json.Marshal(map[string]string{"status": "canceled"})

	req, _ := http.NewRequest(http.MethodPut, "/appointments/"+testAppointmentID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]string
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "completed")
}

func TestUpdateAppointment_DateChangeMarksRescheduled(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	oldDate := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	newDate := time.Date(2026, 9, 17, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(testAppointmentID, testPatientID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "patient_id", "doctor_id", "date", "status"}).
			AddRow(testAppointmentID, testPatientID, testDoctorID, oldDate, "scheduled"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET (.+) WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(sqlmock.AnyArg(), string(models.AppointmentRescheduled), sqlmock.AnyArg(), testAppointmentID, testPatientID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+)`).
		WithArgs(testAppointmentID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "patient_id", "doctor_id", "date", "status"}).
			AddRow(testAppointmentID, testPatientID, testDoctorID, newDate, "rescheduled"))

	r := testutils.SetupTestRouter()
	r.PUT("/appointments/:id", authAs(testPatientID), UpdateAppointment)

	body, _ := json.Marshal(map[string]string{"date": newDate.Format(time.RFC3339)})

	req, _ := http.NewRequest(http.MethodPut, "/appointments/"+testAppointmentID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.Appointment
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, models.AppointmentRescheduled, response["appointment"].Status)
}

func TestUpdateAppointment_ReloadFailure(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	oldDate := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	newDate := time.Date(2026, 9, 17, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(testAppointmentID, testPatientID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "patient_id", "doctor_id", "date", "status"}).
			AddRow(testAppointmentID, testPatientID, testDoctorID, oldDate, "scheduled"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET (.+) WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(sqlmock.AnyArg(), string(models.AppointmentRescheduled), sqlmock.AnyArg(), testAppointmentID, testPatientID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+)`).
		WithArgs(testAppointmentID, 1).
		WillReturnError(errors.New("connection reset"))

	r := testutils.SetupTestRouter()
	r.PUT("/appointments/:id", authAs(testPatientID), UpdateAppointment)

	body, _ := json.Marshal(map[string]string{"date": newDate.Format(time.RFC3339)})

	req, _ := http.NewRequest(http.MethodPut, "/appointments/"+testAppointmentID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestDeleteAppointment_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments" WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(testAppointmentID, testPatientID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/appointments/:id", authAs(testPatientID), DeleteAppointment)

	req, _ := http.NewRequest(http.MethodDelete, "/appointments/"+testAppointmentID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments" WHERE id = (.+) AND patient_id = (.+)`).
		WithArgs(testAppointmentID, testPatientID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/appointments/:id", authAs(testPatientID), DeleteAppointment)

	req, _ := http.NewRequest(http.MethodDelete, "/appointments/"+testAppointmentID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
