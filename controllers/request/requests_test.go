package requestControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/middleware"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

// asCaller stands in for ValidateToken, attaching a verified email.
func asCaller(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, email)
		c.Next()
	}
}

func requestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "meal_id", "meal_title", "requester_email", "requester_name", "status", "requested_at",
	})
}

func TestMarkDeliveredTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deliver := func(db *gorm.DB, id string) *httptest.ResponseRecorder {
		r := gin.New()
		r.PATCH("/requestMeal/:id", MarkDelivered(db))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/requestMeal/"+id, nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("pending request is delivered", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "meal_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "meal_requests"`).
			WillReturnRows(requestRows().
				AddRow(1, 7, "Chicken Biryani", "a@x.com", "A", "Delivered", time.Now()))

		w := deliver(db, "1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// The transition is unconditional, so delivering twice succeeds and
	// leaves the status unchanged.
	t.Run("second delivery is a no-op success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "meal_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "meal_requests"`).
			WillReturnRows(requestRows().
				AddRow(1, 7, "Chicken Biryani", "a@x.com", "A", "Delivered", time.Now()))

		w := deliver(db, "1")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "meal_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := deliver(db, "999")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOwnRequestsSelfMatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("another member's requests are off limits", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := gin.New()
		r.GET("/requestMeal", asCaller("a@x.com"), GetOwnRequests(db))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/requestMeal?email=b@x.com", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("own requests are listed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "meal_requests"`).
			WillReturnRows(requestRows().
				AddRow(1, 7, "Chicken Biryani", "a@x.com", "A", "Pending", time.Now()))

		r := gin.New()
		r.GET("/requestMeal", asCaller("a@x.com"), GetOwnRequests(db))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/requestMeal?email=a@x.com", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Pending")
	})
}
