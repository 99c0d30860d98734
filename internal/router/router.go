package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/diffen77/gastropartner-sub000/internal/analytics"
	"github.com/diffen77/gastropartner-sub000/internal/auth"
	"github.com/diffen77/gastropartner-sub000/internal/costcontrol"
	"github.com/diffen77/gastropartner-sub000/internal/impact"
	"github.com/diffen77/gastropartner-sub000/internal/ingredient"
	"github.com/diffen77/gastropartner-sub000/internal/menu"
	"github.com/diffen77/gastropartner-sub000/internal/middleware"
	"github.com/diffen77/gastropartner-sub000/internal/modules"
	"github.com/diffen77/gastropartner-sub000/internal/org"
	"github.com/diffen77/gastropartner-sub000/internal/recipe"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Org         *org.Handler
	Modules     *modules.Handler
	Ingredients *ingredient.Handler
	Recipes     *recipe.Handler
	Menu        *menu.Handler
	CostControl *costcontrol.Handler
	Impact      *impact.Handler
	Analytics   *analytics.Handler

	// ModuleService backs the per-route feature gates.
	ModuleService *modules.Service
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())

	orgs := protected.Group("/organizations")
	{
		orgs.GET("/current", h.Org.Current)
		orgs.GET("/onboarding", h.Org.OnboardingStatus)
		orgs.PUT("/onboarding", h.Org.SetOnboardingStatus)

		wizard := orgs.Group("/wizard")
		wizard.Use(middleware.RequireModule(h.ModuleService, modules.Onboarding))
		{
			wizard.PUT("", h.Org.SaveWizard)
			wizard.GET("", h.Org.ResumeWizard)
			wizard.DELETE("", h.Org.DiscardWizard)
		}
	}

	mods := protected.Group("/modules")
	{
		mods.GET("", h.Modules.List)
		mods.POST("/:module/enable",
			middleware.RequireRole(auth.RoleOwner, auth.RoleAdmin), h.Modules.Enable)
		mods.POST("/:module/disable",
			middleware.RequireRole(auth.RoleOwner, auth.RoleAdmin), h.Modules.Disable)
	}

	ingredients := protected.Group("/ingredients")
	{
		ingredients.POST("", h.Ingredients.Create)
		ingredients.GET("", h.Ingredients.List)
		ingredients.GET("/:id", h.Ingredients.Get)
		ingredients.PUT("/:id", h.Ingredients.Update)
		ingredients.DELETE("/:id", h.Ingredients.Delete)
	}

	recipes := protected.Group("/recipes")
	{
		recipes.POST("", h.Recipes.Create)
		recipes.GET("", h.Recipes.List)
		recipes.GET("/:id", h.Recipes.Get)
		recipes.PUT("/:id", h.Recipes.Update)
		recipes.DELETE("/:id", h.Recipes.Delete)
	}

	menuItems := protected.Group("/menu-items")
	menuItems.Use(middleware.RequireModule(h.ModuleService, modules.MenuPlanning))
	{
		menuItems.POST("", h.Menu.Create)
		menuItems.GET("", h.Menu.List)
		menuItems.GET("/:id", h.Menu.Get)
		menuItems.PUT("/:id", h.Menu.Update)
		menuItems.DELETE("/:id", h.Menu.Delete)
		menuItems.GET("/:id/margins", h.Menu.Margins)
		menuItems.POST("/:id/image", h.Menu.UploadImage)
	}

	cost := protected.Group("/cost-control")
	cost.Use(middleware.RequireModule(h.ModuleService, modules.CostControl))
	{
		cost.POST("/items", h.CostControl.AddItem)
		cost.GET("/items", h.CostControl.ListItems)
		cost.PUT("/items/:id", h.CostControl.UpdateItem)
		cost.DELETE("/items/:id", h.CostControl.RemoveItem)
		cost.DELETE("/items", h.CostControl.ClearItems)
		cost.PUT("/servings", h.CostControl.SetServings)
		cost.PUT("/target-margin", h.CostControl.SetTargetMargin)
		cost.PUT("/price-override", h.CostControl.SetPriceOverride)
		cost.DELETE("/price-override", h.CostControl.ClearPriceOverride)
		cost.GET("/result", h.CostControl.Result)
		cost.DELETE("/session", h.CostControl.ResetSession)

		cost.POST("/calculate-recipe/:id", h.CostControl.CalculateRecipe)
		cost.POST("/calculate-menu-item/:id", h.CostControl.CalculateMenuItem)

		cost.POST("/analyze-margin/recipe/:id", h.Impact.Analyze)
		cost.POST("/analyze-margin/recipe/:id/apply", h.Impact.Apply)
		cost.GET("/analyze-margin/recipe/:id/history", h.Impact.History)

		cost.POST("/unit-conversion", h.CostControl.ConvertUnits)
		cost.GET("/unit-conversion/compatible", h.CostControl.CompatibleUnits)
	}

	analyticsGroup := protected.Group("/analytics")
	analyticsGroup.Use(middleware.RequireModule(h.ModuleService, modules.Analytics))
	{
		analyticsGroup.GET("/margins", h.Analytics.Get)
		analyticsGroup.POST("/margins/recompute", h.Analytics.Recompute)
	}

	return r
}
