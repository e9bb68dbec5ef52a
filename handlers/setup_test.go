package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/nanaboakye-dev/tasty-bites/config"
	"github.com/nanaboakye-dev/tasty-bites/middleware"
	"github.com/nanaboakye-dev/tasty-bites/models"
	"github.com/nanaboakye-dev/tasty-bites/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter gives each test a fresh in-memory database and the real
// router with the real middleware chain.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// a single connection keeps every query on the same :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func seedUser(t *testing.T, role models.UserRole, email string) (models.User, string) {
	t.Helper()
	user := models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func tokenFor(t *testing.T, role models.UserRole, email string) string {
	_, token := seedUser(t, role, email)
	return token
}

func adminToken(t *testing.T) string {
	return tokenFor(t, models.RoleAdmin, "admin@tastybites.test")
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func seedWorker(t *testing.T, name string) models.Worker {
	t.Helper()
	worker := models.Worker{Name: name, Role: "chef", Phone: "555-0100", Active: true}
	if err := config.DB.Create(&worker).Error; err != nil {
		t.Fatalf("seed worker: %v", err)
	}
	return worker
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
