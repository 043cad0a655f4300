package userControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

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

func asCaller(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, email)
		c.Next()
	}
}

func checkAdmin(t *testing.T, db *gorm.DB, caller, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/users/admin/:email", asCaller(caller), CheckAdmin(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/"+target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCheckAdminSelfMatch(t *testing.T) {
	// Even with a valid token, asking about someone else's admin flag
	// is rejected before any lookup happens.
	t.Run("foreign email rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		w := checkAdmin(t, db, "a@x.com", "b@x.com")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("own flag reported", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "badge"}).
				AddRow("u1", "a@x.com", "A", "admin", ""))

		w := checkAdmin(t, db, "a@x.com", "a@x.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin": true}`, w.Body.String())
	})

	t.Run("unregistered caller is not admin", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := checkAdmin(t, db, "new@x.com", "new@x.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin": false}`, w.Body.String())
	})
}
