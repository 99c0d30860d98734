package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/diffen77/gastropartner-sub000/internal/analytics"
	"github.com/diffen77/gastropartner-sub000/internal/auth"
	"github.com/diffen77/gastropartner-sub000/internal/costcontrol"
	"github.com/diffen77/gastropartner-sub000/internal/impact"
	"github.com/diffen77/gastropartner-sub000/internal/ingredient"
	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
	"github.com/diffen77/gastropartner-sub000/internal/menu"
	"github.com/diffen77/gastropartner-sub000/internal/modules"
	"github.com/diffen77/gastropartner-sub000/internal/org"
	"github.com/diffen77/gastropartner-sub000/internal/recipe"
)

// newTestEngine wires the full router against in-memory repositories.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop().Sugar()
	store := kvstore.NewMemoryStore()

	orgService := org.NewService(org.NewInMemoryRepository(), store, logger)
	moduleService := modules.NewService(modules.NewInMemoryRepository(), logger)
	provisioner := org.NewProvisioner(orgService, moduleService)
	authService := auth.NewService(auth.NewInMemoryUserRepository(), provisioner, logger)

	ingredientRepo := ingredient.NewInMemoryRepository()
	ingredientService := ingredient.NewService(ingredientRepo, logger)

	recipeRepo := recipe.NewInMemoryRepository()
	recipeService := recipe.NewService(recipeRepo, ingredientRepo, logger)

	menuRepo := menu.NewInMemoryRepository()
	menuService := menu.NewService(menuRepo, recipeService, nil, logger)

	sessions := costcontrol.NewSessionManager(store, time.Millisecond)
	t.Cleanup(sessions.Close)

	history := impact.NewHistory(store)
	analyzer := impact.NewAnalyzer(recipeRepo, menuRepo, recipeService, history, logger)

	analyticsService := analytics.NewService(analytics.NewInMemoryRepository(), menuService, logger)

	return New(Handlers{
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
}

func request(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	w := request(r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":              "Test User",
		"email":             "owner@example.com",
		"password":          "Password@123",
		"organization_name": "Krogen AB",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Token
}

func TestHealthCheck(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r := newTestEngine(t)

	w := request(r, http.MethodGet, "/api/v1/ingredients", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestIngredientCRUDThroughRouter(t *testing.T) {
	r := newTestEngine(t)
	token := registerAndLogin(t, r)

	w := request(r, http.MethodPost, "/api/v1/ingredients", token, map[string]interface{}{
		"name":          "Smör",
		"category":      "Mejeri",
		"unit":          "kg",
		"cost_per_unit": 89,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ingredient: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = request(r, http.MethodGet, "/api/v1/ingredients", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list ingredients: expected 200, got %d", w.Code)
	}
}

func TestMenuItemsGatedByModule(t *testing.T) {
	r := newTestEngine(t)
	token := registerAndLogin(t, r)

	// menu_planning is not a default module
	w := request(r, http.MethodGet, "/api/v1/menu-items", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before enabling module, got %d", w.Code)
	}

	w = request(r, http.MethodPost, "/api/v1/modules/menu_planning/enable", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("enable module: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = request(r, http.MethodGet, "/api/v1/menu-items", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after enabling module, got %d", w.Code)
	}
}

func TestCostControlEnabledByDefault(t *testing.T) {
	r := newTestEngine(t)
	token := registerAndLogin(t, r)

	w := request(r, http.MethodGet, "/api/v1/cost-control/result", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
