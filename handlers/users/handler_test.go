package users

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

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

const testUserID = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestGetCurrentUser_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs(testUserID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "auth_id", "email", "first_name", "last_name", "role"}).
			AddRow(testUserID, "usr_abc", "patient@example.com", "John", "Doe", "patient"))

	r := testutils.SetupTestRouter()
	r.GET("/users/me", authAs(testUserID), GetCurrentUser)

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.User
	json.Unmarshal(resp.Body.Bytes(), &response)

	user := response["user"]
	assert.Equal(t, "patient@example.com", user.Email)
	assert.Equal(t, "John", user.FirstName)
	assert.Empty(t, user.Password)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs(testUserID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/users/me", authAs(testUserID), GetCurrentUser)

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/users/me", authAs(testUserID), UpdateProfile)

	body, _ := json.Marshal(map[string]string{
		"role":   "patient",
		"gender": "male",
	})

	req, _ := http.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Profile updated", respBody["message"])
}

func TestUpdateProfile_InvalidRole(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.PUT("/users/me", authAs(testUserID), UpdateProfile)

	body, _ := json.Marshal(map[string]string{"role": "superuser"})

	req, _ := http.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetDoctors_FilteredBySpecialization(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	specializationID := "3c4d5e6f-7a8b-4c9d-0e1f-2a3b4c5d6e7f"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE role = (.+) AND specialization_id = (.+) ORDER BY first_name ASC`).
		WithArgs(string(models.DoctorRole), specializationID).
		WillReturnRows(mock.NewRows([]string{"id", "first_name", "last_name", "role", "specialization_id"}).
			AddRow("doc-1", "Sarah", "Lee", "doctor", specializationID))

	r := testutils.SetupTestRouter()
	r.GET("/doctors", GetDoctors)

	req, _ := http.NewRequest(http.MethodGet, "/doctors?specializationId="+specializationID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string][]models.User
	json.Unmarshal(resp.Body.Bytes(), &response)

	doctors := response["doctors"]
	assert.Len(t, doctors, 1)
	assert.Equal(t, "Sarah", doctors[0].FirstName)
}
