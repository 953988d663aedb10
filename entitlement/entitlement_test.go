package entitlement

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/testutils"

	"github.com/DATA-DOG/go-sqlmock"
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

const testPatientID = "4f5e6d7c-8b9a-4c3d-2e1f-0a9b8c7d6e5f"

func expectSubscriptionLookup(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(`SELECT (.+) FROM "subscriptions" WHERE patient_id = (.+) AND status = (.+) AND end_date >= (.+)`).
		WithArgs(testPatientID, string(models.SubscriptionActive), sqlmock.AnyArg(), 1)
}

func expectCreditSum(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(`SELECT COALESCE(.+) FROM "payments" WHERE patient_id = (.+) AND payment_type = (.+) AND status = (.+) AND remaining_appointments > 0`).
		WithArgs(testPatientID, string(models.PaymentTypeSingle), string(models.PaymentCompleted))
}

func TestEvaluate_ActiveSubscriptionWinsOverCredits(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	endDate := time.Now().Add(15 * 24 * time.Hour)
	expectSubscriptionLookup(mock).
		WillReturnRows(mock.NewRows([]string{"id", "patient_id", "plan_id", "status", "end_date"}).
			AddRow("sub-1", testPatientID, "plan-1", "active", endDate))

	result, err := Evaluate(gormDB, testPatientID)

	assert.NoError(t, err)
	assert.Equal(t, KindSubscription, result.Kind)
	assert.True(t, result.Unlimited)
	assert.NotNil(t, result.Subscription)
	assert.Equal(t, "sub-1", result.Subscription.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluate_SingleCreditsSummedAcrossPayments(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectSubscriptionLookup(mock).WillReturnError(gorm.ErrRecordNotFound)
	expectCreditSum(mock).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(3))

	result, err := Evaluate(gormDB, testPatientID)

	assert.NoError(t, err)
	assert.Equal(t, KindSingle, result.Kind)
	assert.False(t, result.Unlimited)
	assert.Equal(t, 3, result.Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluate_NoEntitlement(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectSubscriptionLookup(mock).WillReturnError(gorm.ErrRecordNotFound)
	expectCreditSum(mock).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(0))

	result, err := Evaluate(gormDB, testPatientID)

	assert.NoError(t, err)
	assert.Equal(t, KindNone, result.Kind)
	assert.Equal(t, 0, result.Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluate_ExpiredSubscriptionFallsBackToCredits(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// The expired row never matches the end_date filter, so the lookup
	// comes back empty and the credit sum decides.
	expectSubscriptionLookup(mock).WillReturnError(gorm.ErrRecordNotFound)
	expectCreditSum(mock).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(1))

	result, err := Evaluate(gormDB, testPatientID)

	assert.NoError(t, err)
	assert.Equal(t, KindSingle, result.Kind)
	assert.Equal(t, 1, result.Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}
