package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tabhaider/todo-webapp-api/internal/auth"
	"github.com/tabhaider/todo-webapp-api/internal/middleware"
	"github.com/tabhaider/todo-webapp-api/internal/models"
	"github.com/tabhaider/todo-webapp-api/internal/repository"
	"github.com/tabhaider/todo-webapp-api/internal/services"
)

// testEnv wires an in-memory database, the auth core, and a router with the
// same routes the server mounts.
type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func newTestEnv() (*testEnv, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return nil, err
	}

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	authService := services.NewAuthService(userRepo, hasher, tokens)
	taskService := services.NewTaskService(taskRepo)

	authHandler := NewAuthHandler(authService)
	taskHandler := NewTaskHandler(taskService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentUser)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(authService))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/complete", taskHandler.CompleteTask)
		}
	}

	return &testEnv{
		db:          db,
		router:      router,
		authService: authService,
	}, nil
}

func (env *testEnv) close() {
	if sqlDB, err := env.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// request performs an HTTP request against the test router, attaching the
// bearer token when one is given.
func (env *testEnv) request(method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns a valid bearer token.
func (env *testEnv) registerAndLogin(email, password string) (string, error) {
	if _, err := env.authService.Register(services.RegisterInput{
		Email:    email,
		Password: password,
	}); err != nil {
		return "", err
	}

	cred, err := env.authService.Login(services.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	return cred.AccessToken, nil
}

func decodeJSON(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return response
}
