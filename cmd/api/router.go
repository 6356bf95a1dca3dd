package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/pkg/container"
)

// setupRouter wires the HTTP surface.
func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	v1 := router.Group("/api/v1")

	auth := middleware.Auth(c.JWTManager)
	optionalAuth := middleware.OptionalAuth(c.JWTManager)

	// Auth
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.UserHandler.Register)
		authGroup.POST("/login", c.UserHandler.Login)
	}

	// Users and subscriptions
	users := v1.Group("/users")
	{
		users.GET("", optionalAuth, c.UserHandler.List)
		users.GET("/me", auth, c.UserHandler.Me)
		users.GET("/subscriptions", auth, c.SubscriptionHandler.List)
		users.GET("/:id", optionalAuth, c.UserHandler.GetByID)
		users.POST("/:id/subscribe", auth, c.SubscriptionHandler.Subscribe)
		users.DELETE("/:id/subscribe", auth, c.SubscriptionHandler.Unsubscribe)
	}

	// Reference data
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.GetAll)
		tags.GET("/:id", c.TagHandler.GetByID)
	}
	ingredients := v1.Group("/ingredients")
	{
		ingredients.GET("", c.IngredientHandler.Search)
		ingredients.GET("/:id", c.IngredientHandler.GetByID)
	}

	// Recipes
	recipes := v1.Group("/recipes")
	{
		recipes.GET("", optionalAuth, c.RecipeHandler.List)
		recipes.GET("/download_shopping_cart", auth, c.RecipeHandler.DownloadShoppingCart)
		recipes.GET("/:id", optionalAuth, c.RecipeHandler.GetByID)
		recipes.POST("", auth, c.RecipeHandler.Create)
		recipes.PATCH("/:id", auth, c.RecipeHandler.Update)
		recipes.DELETE("/:id", auth, c.RecipeHandler.Delete)

		recipes.POST("/:id/favorite", auth, c.RecipeHandler.AddFavorite)
		recipes.DELETE("/:id/favorite", auth, c.RecipeHandler.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", auth, c.RecipeHandler.AddToCart)
		recipes.DELETE("/:id/shopping_cart", auth, c.RecipeHandler.RemoveFromCart)
	}

	return router
}
