package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"foodgram-backend/internal/config"
	ingredienthandler "foodgram-backend/internal/domains/ingredient/handler"
	ingredientrepo "foodgram-backend/internal/domains/ingredient/repository"
	ingredientservice "foodgram-backend/internal/domains/ingredient/service"
	recipehandler "foodgram-backend/internal/domains/recipe/handler"
	reciperepo "foodgram-backend/internal/domains/recipe/repository"
	recipeservice "foodgram-backend/internal/domains/recipe/service"
	subscriptionhandler "foodgram-backend/internal/domains/subscription/handler"
	subscriptionrepo "foodgram-backend/internal/domains/subscription/repository"
	subscriptionservice "foodgram-backend/internal/domains/subscription/service"
	taghandler "foodgram-backend/internal/domains/tag/handler"
	tagrepo "foodgram-backend/internal/domains/tag/repository"
	tagservice "foodgram-backend/internal/domains/tag/service"
	userhandler "foodgram-backend/internal/domains/user/handler"
	userrepo "foodgram-backend/internal/domains/user/repository"
	userservice "foodgram-backend/internal/domains/user/service"
	"foodgram-backend/internal/infrastructure/cache"
	"foodgram-backend/internal/infrastructure/database"
	"foodgram-backend/internal/infrastructure/storage"
	"foodgram-backend/pkg/jwt"
	"foodgram-backend/pkg/logger"
)

// =============================================================================
// DEPENDENCY CONTAINER
// =============================================================================

// Container wires the whole application graph, config through
// infrastructure through domains.
type Container struct {
	Config *config.Config

	DB          *database.PostgresDB
	Cache       *cache.RedisCache
	Storage     *storage.MinIOStorage
	QueueClient *asynq.Client
	JWTManager  *jwt.Manager

	// Services
	UserService         userservice.UserService
	TagService          tagservice.TagService
	IngredientService   ingredientservice.IngredientService
	ImportService       ingredientservice.ImportService
	RecipeService       recipeservice.RecipeService
	RelationService     recipeservice.RelationService
	ShoppingListService recipeservice.ShoppingListService
	SubscriptionService subscriptionservice.SubscriptionService
	ImageService        recipeservice.ImageService

	// Repositories, exposed for the worker handlers
	RecipeRepo reciperepo.RecipeRepository

	// Handlers
	UserHandler         *userhandler.UserHandler
	TagHandler          *taghandler.TagHandler
	IngredientHandler   *ingredienthandler.IngredientHandler
	RecipeHandler       *recipehandler.RecipeHandler
	SubscriptionHandler *subscriptionhandler.SubscriptionHandler
}

// New builds the container. Order matters: config, then
// infrastructure, then repositories, services and handlers.
func New(ctx context.Context) (*Container, error) {
	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. PostgreSQL
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbCfg)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 3. Redis
	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// 4. MinIO
	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio: %w", err)
	}

	// 5. Task queue client
	c.QueueClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 6. JWT
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// 7. Repositories
	userRepo := userrepo.NewPostgresUserRepository(c.DB.Pool)
	tagRepo := tagrepo.NewPostgresTagRepository(c.DB.Pool, c.Cache)
	ingredientRepo := ingredientrepo.NewPostgresIngredientRepository(c.DB.Pool, c.Cache)
	recipeRepo := reciperepo.NewPostgresRecipeRepository(c.DB.Pool)
	relationRepo := reciperepo.NewPostgresRelationRepository(c.DB.Pool)
	subscriptionRepo := subscriptionrepo.NewPostgresSubscriptionRepository(c.DB.Pool)
	c.RecipeRepo = recipeRepo

	// 8. Services
	c.UserService = userservice.NewUserService(userRepo, c.JWTManager)
	c.TagService = tagservice.NewTagService(tagRepo)
	c.IngredientService = ingredientservice.NewIngredientService(ingredientRepo)
	c.ImportService = ingredientservice.NewImportService(ingredientRepo, tagRepo)
	c.ImageService = recipeservice.NewImageService(c.Storage, storage.NewImageProcessor())
	c.RecipeService = recipeservice.NewRecipeService(recipeRepo, c.ImageService, c.QueueClient)
	c.RelationService = recipeservice.NewRelationService(recipeRepo, relationRepo)
	c.ShoppingListService = recipeservice.NewShoppingListService(relationRepo, cfg.ShoppingList.LegacyFirstRowOnly)
	c.SubscriptionService = subscriptionservice.NewSubscriptionService(subscriptionRepo, userRepo)

	// 9. Handlers
	c.UserHandler = userhandler.NewUserHandler(c.UserService)
	c.TagHandler = taghandler.NewTagHandler(c.TagService)
	c.IngredientHandler = ingredienthandler.NewIngredientHandler(c.IngredientService)
	c.RecipeHandler = recipehandler.NewRecipeHandler(c.RecipeService, c.RelationService, c.ShoppingListService)
	c.SubscriptionHandler = subscriptionhandler.NewSubscriptionHandler(c.SubscriptionService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Close releases the infrastructure connections in reverse order.
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
}
