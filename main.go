package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"enstracker/cmd"
	"enstracker/internal/activity"
	"enstracker/internal/core/logger"
	"enstracker/internal/dashboard"
	"enstracker/internal/database"
	"enstracker/internal/inventory"
	"enstracker/internal/issuance"
	"enstracker/internal/middleware"
	"enstracker/internal/store"
	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	if len(os.Args) > 1 {
		cmd.Execute(ctx)
		return
	}

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	if err := security.Init(os.Getenv("JWT_SECRET")); err != nil {
		zapLogger.Fatal("JWT_SECRET environment variable is not set", zap.Error(err))
	}

	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = "enstracker.db"
	}

	db, err := database.NewSQLiteConnection(storePath)
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer db.Close()

	st, err := store.NewSQLiteStore(db)
	if err != nil {
		zapLogger.Fatal("failed to prepare store", zap.Error(err))
	}

	inventoryRepo := inventory.NewRepository(st)
	activityLog := activity.NewLog(st)
	auth := security.NewAuthenticator(st, security.DefaultLoginDelay)

	seedAll(inventoryRepo, activityLog, auth, zapLogger)

	router := gin.New()
	router.Use(gin.Logger(), middleware.RecoveryMiddleware(zapLogger))

	security.RegisterRoutes(router, auth)
	inventory.NewHandler(inventoryRepo, activityLog).RegisterRoutes(router)
	activity.NewHandler(activityLog).RegisterRoutes(router)
	issuance.NewHandler(issuance.NewService(inventoryRepo, activityLog)).RegisterRoutes(router)
	dashboard.NewHandler(inventoryRepo, activityLog).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = ":8080"
	}

	zapLogger.Info("starting server", zap.String("host", host), zap.String("store", storePath))
	if err := router.Run(host); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

// seedAll initializes absent store keys. A corrupt key halts startup unless
// the operator explicitly opted into the reset recovery policy via
// RESET_CORRUPT_KEYS.
func seedAll(repo *inventory.Repository, activityLog *activity.Log, auth *security.Authenticator, zapLogger *zap.Logger) {
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "password"
	}

	steps := []struct {
		key   string
		seed  func() error
		reset func() error
	}{
		{
			key:   "ensInventory",
			seed:  func() error { return repo.Seed(inventory.SeedAssets) },
			reset: func() error { return repo.Reset(inventory.SeedAssets, zapLogger) },
		},
		{
			key:   "ensActivity",
			seed:  func() error { return activityLog.Seed() },
			reset: func() error { return activityLog.Reset(zapLogger) },
		},
		{
			key:   "ensUsers",
			seed:  func() error { return auth.Seed(adminPassword) },
			reset: func() error { return auth.Reset(adminPassword, zapLogger) },
		},
	}

	resetCorrupt := os.Getenv("RESET_CORRUPT_KEYS") == "true"

	for _, step := range steps {
		err := step.seed()
		if err == nil {
			continue
		}

		var corrupt *custom_error.CorruptStateError
		if errors.As(err, &corrupt) && resetCorrupt {
			if err := step.reset(); err != nil {
				zapLogger.Fatal("failed to reset corrupt key", zap.String("key", corrupt.Key()), zap.Error(err))
			}
			continue
		}

		zapLogger.Fatal("failed to seed store", zap.String("key", step.key), zap.Error(err))
	}
}
