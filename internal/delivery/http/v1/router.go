package v1

import (
	"net/http"
	"time"

	"go-profile-backend/config"
	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	ProjectUC    domain.ProjectUsecase
	SkillUC      domain.SkillUsecase
	ExperienceUC domain.ExperienceUsecase
	EducationUC  domain.EducationUsecase
	CountryUC    domain.CountryUsecase
	Tokens       *auth.TokenService
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.GlobalRateLimitMiddleware(time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config)
		NewProfileHandler(v1, protected, deps.ProfileUC)
		NewProjectHandler(v1, deps.ProjectUC)
		NewSkillHandler(v1, deps.SkillUC)
		NewExperienceHandler(v1, deps.ExperienceUC)
		NewEducationHandler(v1, deps.EducationUC)
		NewCountryHandler(v1, deps.CountryUC)
		NewUploadHandler(v1, protected, deps.Config)
	}

	return r
}
