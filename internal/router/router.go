package router

import (
	"net/http"

	"patrimonio-go/internal/config"
	"patrimonio-go/internal/handler"
	"patrimonio-go/internal/middleware"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"
	"patrimonio-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const resetLimiterPrefix = "patrimonio:reset_password"

// SetupRouter builds the HTTP engine. redisClient may be nil, in which case
// logout does not blacklist tokens and reset attempts are not limited.
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	r := gin.New()

	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Patrimônio API",
			"version": "1.0.0",
		})
	})

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	fieldRepo := repository.NewFieldDefinitionRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager, cfg, logger)
	if redisClient != nil {
		authService.
			WithBlacklist(repository.NewTokenBlacklistRepository(redisClient)).
			WithResetLimiter(redis_limiter.NewRedisLimiter(
				redisClient,
				cfg.Security.ResetMaxAttempts,
				resetLimiterPrefix,
				cfg.Security.GetResetWindow(),
			))
	}
	userService := service.NewUserService(userRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo)
	fieldService := service.NewFieldDefinitionService(fieldRepo, categoryRepo)
	assetService := service.NewAssetService(assetRepo, categoryRepo, fieldRepo)
	exportService := service.NewExportService(assetRepo, categoryRepo, fieldRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService, fieldService)
	fieldHandler := handler.NewFieldDefinitionHandler(fieldService)
	assetHandler := handler.NewAssetHandler(assetService, exportService)

	api := r.Group("/api")
	{
		// public
		api.POST("/user/register", authHandler.Register)
		api.POST("/token", authHandler.Token)
		api.POST("/token/refresh", authHandler.Refresh)
		api.POST("/user/get-secret-question", authHandler.GetSecretQuestion)
		api.POST("/user/reset-password", authHandler.ResetPassword)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager, userRepo))
		{
			authorized.GET("/me", authHandler.GetMe)
			authorized.POST("/logout", authHandler.Logout)

			authorized.GET("/categories", categoryHandler.ListCategories)
			authorized.GET("/categories/:id", categoryHandler.GetCategory)

			authorized.GET("/assets", assetHandler.ListAssets)
			authorized.GET("/assets/export", assetHandler.ExportAssets)
			authorized.GET("/assets/:id", assetHandler.GetAsset)

			editor := authorized.Group("")
			editor.Use(middleware.EditorMiddleware())
			{
				editor.GET("/categories/:id/fields", categoryHandler.ListFields)
				editor.POST("/categories/:id/fields", categoryHandler.CreateField)

				editor.GET("/fields/:id", fieldHandler.GetField)
				editor.PUT("/fields/:id", fieldHandler.UpdateField)
				editor.PATCH("/fields/:id", fieldHandler.PatchField)
				editor.DELETE("/fields/:id", fieldHandler.DeleteField)

				editor.POST("/assets", assetHandler.CreateAsset)
				editor.PUT("/assets/:id", assetHandler.UpdateAsset)
				editor.PATCH("/assets/:id", assetHandler.PatchAsset)
				editor.DELETE("/assets/:id", assetHandler.DeleteAsset)
			}

			admin := authorized.Group("")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.POST("/categories", categoryHandler.CreateCategory)
				admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
				admin.PATCH("/categories/:id", categoryHandler.UpdateCategory)
				admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

				admin.GET("/users", userHandler.ListUsers)
				admin.GET("/users/:id", userHandler.GetUser)
				admin.PUT("/users/:id", userHandler.UpdateUser)
				admin.PATCH("/users/:id", userHandler.UpdateUser)
				admin.DELETE("/users/:id", userHandler.DeleteUser)
				admin.PUT("/users/:id/update-role", userHandler.UpdateRole)
			}
		}
	}

	return r
}
