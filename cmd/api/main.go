package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/analytics"
	"github.com/diffen77/gastropartner-sub000/internal/auth"
	"github.com/diffen77/gastropartner-sub000/internal/costcalc"
	"github.com/diffen77/gastropartner-sub000/internal/costcontrol"
	"github.com/diffen77/gastropartner-sub000/internal/db"
	"github.com/diffen77/gastropartner-sub000/internal/impact"
	"github.com/diffen77/gastropartner-sub000/internal/ingredient"
	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
	"github.com/diffen77/gastropartner-sub000/internal/menu"
	"github.com/diffen77/gastropartner-sub000/internal/modules"
	"github.com/diffen77/gastropartner-sub000/internal/org"
	"github.com/diffen77/gastropartner-sub000/internal/recipe"
	"github.com/diffen77/gastropartner-sub000/internal/router"
	"github.com/diffen77/gastropartner-sub000/internal/storage"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── LOGGING ─────────────────────────
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("logger init failed:", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	store := kvstore.NewPostgresStore(pgDB)

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background(), storage.Config{
		Endpoint:  os.Getenv("R2_ENDPOINT"),
		AccessKey: os.Getenv("R2_ACCESS_KEY"),
		SecretKey: os.Getenv("R2_SECRET_KEY"),
		Bucket:    os.Getenv("R2_BUCKET_NAME"),
		BaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	})
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	orgRepo := org.NewPostgresRepository(pgDB)
	moduleRepo := modules.NewPostgresRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	snapshotRepo := analytics.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	orgService := org.NewService(orgRepo, store, logger)
	moduleService := modules.NewService(moduleRepo, logger)
	provisioner := org.NewProvisioner(orgService, moduleService)
	authService := auth.NewService(userRepo, provisioner, logger)

	ingredientService := ingredient.NewService(ingredientRepo, logger)
	recipeService := recipe.NewService(recipeRepo, ingredientRepo, logger)
	menuService := menu.NewService(menuRepo, recipeService, r2Client, logger)
	analyticsService := analytics.NewService(snapshotRepo, menuService, logger)

	sessions := costcontrol.NewSessionManager(store, costcalc.DefaultRecalcDelay)
	defer sessions.Close()

	history := impact.NewHistory(store)
	analyzer := impact.NewAnalyzer(recipeRepo, menuRepo, recipeService, history, logger)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:          auth.NewHandler(authService),
		Org:           org.NewHandler(orgService),
		Modules:       modules.NewHandler(moduleService),
		Ingredients:   ingredient.NewHandler(ingredientService),
		Recipes:       recipe.NewHandler(recipeService),
		Menu:          menu.NewHandler(menuService),
		CostControl:   costcontrol.NewHandler(sessions, recipeService, menuService),
		Impact:        impact.NewHandler(analyzer, history),
		Analytics:     analytics.NewHandler(analyticsService),
		ModuleService: moduleService,
	})

	// ───────────────────────── START ─────────────────────────
	logger.Infow("API running", "addr", "http://localhost:8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
