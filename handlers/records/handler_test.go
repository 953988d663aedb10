package records

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/testutils"

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
	testPatientID = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	testDoctorID  = "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
)

func authAs(userID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(role))
		c.Next()
	}
}

func TestGetMedicalRecords_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	recordDate := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
	rows := mock.NewRows([]string{"id", "doctor_name", "diagnosis", "treatment", "record_date"}).
		AddRow("rec-1", "Sarah", "Hypertension stage 1", "Lifestyle changes, follow-up in 3 months", recordDate)

	mock.ExpectQuery(`SELECT (.+) FROM "medical_records" LEFT JOIN users ON users.id = medical_records.doctor_id WHERE medical_records.patient_id = (.+)`).
		WithArgs(testPatientID, 10).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/records", authAs(testPatientID, models.PatientRole), GetMedicalRecords)

	req, _ := http.NewRequest(http.MethodGet, "/records", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string][]MedicalRecordRow
	json.Unmarshal(resp.Body.Bytes(), &response)

	records := response["records"]
	assert.Len(t, records, 1)
	assert.Equal(t, "Sarah", records[0].DoctorName)
	assert.Equal(t, "Hypertension stage 1", records[0].Diagnosis)
}

func TestGetPrescriptions_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	start := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
	rows := mock.NewRows([]string{"id", "medical_record_id", "medication", "dosage", "start_date", "end_date"}).
		AddRow("presc-1", "rec-1", "Amlodipine", "5mg daily", start, start.AddDate(0, 3, 0))

	mock.ExpectQuery(`SELECT (.+) FROM "prescriptions" JOIN medical_records ON medical_records.id = prescriptions.medical_record_id WHERE medical_records.patient_id = (.+)`).
		WithArgs(testPatientID, 10).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/records/prescriptions", authAs(testPatientID, models.PatientRole), GetPrescriptions)

	req, _ := http.NewRequest(http.MethodGet, "/records/prescriptions", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string][]models.Prescription
	json.Unmarshal(resp.Body.Bytes(), &response)

	prescriptions := response["prescriptions"]
	assert.Len(t, prescriptions, 1)
	assert.Equal(t, "Amlodipine", prescriptions[0].Medication)
}

func TestCreateMedicalRecord_WithPrescriptions(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "medical_records" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("rec-1"))
	mock.ExpectQuery(`INSERT INTO "prescriptions" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("presc-1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/records", authAs(testDoctorID, models.DoctorRole), CreateMedicalRecord)

	start := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(map[string]interface{}{
		"patientId": testPatientID,
		"diagnosis": "Hypertension stage 1",
		"treatment": "Lifestyle changes",
		"prescriptions": []map[string]interface{}{
			{
				"medication": "Amlodipine",
				"dosage":     "5mg daily",
				"startDate":  start.Format(time.RFC3339),
				"endDate":    start.AddDate(0, 3, 0).Format(time.RFC3339),
			},
		},
	})

	req, _ := http.NewRequest(http.MethodPost, "/records", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var created models.MedicalRecord
	json.Unmarshal(resp.Body.Bytes(), &created)
	assert.Equal(t, testPatientID, created.PatientID)
	assert.Equal(t, testDoctorID, created.DoctorID)
}

func TestCreateMedicalRecord_ForeignAppointment(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	appointmentID := "44444444-4444-4444-4444-444444444444"

	mock.ExpectQuery(`SELECT (.+) FROM "appointments" WHERE id = (.+) AND doctor_id = (.+) AND patient_id = (.+)`).
		WithArgs(appointmentID, testDoctorID, testPatientID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/records", authAs(testDoctorID, models.DoctorRole), CreateMedicalRecord)

	body, _ := json.Marshal(map[string]interface{}{
		"patientId":     testPatientID,
		"appointmentId": appointmentID,
		"diagnosis":     "Migraine",
		"treatment":     "Hydration and rest",
	})

	req, _ := http.NewRequest(http.MethodPost, "/records", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateMedicalRecord_MissingDiagnosis(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/records", authAs(testDoctorID, models.DoctorRole), CreateMedicalRecord)

	body, _ := json.Marshal(map[string]interface{}{
		"patientId": testPatientID,
		"treatment": "Lifestyle changes",
	})

	req, _ := http.NewRequest(http.MethodPost, "/records", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
