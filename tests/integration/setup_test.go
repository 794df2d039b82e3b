package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"carbontrack/internal/handlers"
	"carbontrack/internal/logger"
	"carbontrack/internal/middleware"
	"carbontrack/internal/models"
	"carbontrack/internal/ratelimit"
	"carbontrack/internal/services"
	"carbontrack/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Session{},
		&models.Activity{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, with a rate limit too high to interfere with test traffic.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithLimiter(t, ratelimit.NewMemoryLimiter(10000, time.Minute))
}

// setupAppWithLimiter wires the stack around a caller-supplied rate limiter.
func setupAppWithLimiter(t *testing.T, limiter ratelimit.Limiter) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, time.Hour)
	activityService := services.NewActivityService(db)
	analyticsService := services.NewAnalyticsService(db, userService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, sessionService)
	activityHandler := handlers.NewActivityHandler(activityService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")
	api.Use(middleware.RateLimit(limiter))

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(sessionService))

	protected.GET("/auth/user", authHandler.GetUser)
	protected.PUT("/auth/profile", authHandler.UpdateProfile)
	protected.POST("/auth/logout", authHandler.Logout)

	activities := protected.Group("/activities")
	activities.POST("", activityHandler.CreateActivity)
	activities.GET("", activityHandler.GetActivities)
	activities.DELETE("", activityHandler.BulkDeleteActivities)
	activities.GET("/recent", activityHandler.GetRecentActivities)
	activities.GET("/analytics", analyticsHandler.GetAnalytics)
	activities.GET("/:id", activityHandler.GetActivityByID)
	activities.PUT("/:id", activityHandler.UpdateActivity)
	activities.DELETE("/:id", activityHandler.DeleteActivity)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the session token and user ID.
func (app *testApp) registerUser(t *testing.T, email string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q}`, email)
	rec := app.request("POST", "/api/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["sessionToken"].(string), user["id"].(string)
}

// createActivity logs an activity and returns its id.
func (app *testApp) createActivity(t *testing.T, token, body string) string {
	t.Helper()
	rec := app.request("POST", "/api/activities", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create activity failed: %d %s", rec.Code, rec.Body.String())
	}
	activity := parseJSON(t, rec)["activity"].(map[string]interface{})
	return activity["id"].(string)
}
