// File: internal/router/router.go
package router

import (
	"log/slog"
	"time"

	"jdgk-cms/internal/cache"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/handler"
	"jdgk-cms/internal/mail"
	"jdgk-cms/internal/metrics"
	"jdgk-cms/internal/middleware"
	"jdgk-cms/internal/upload"
	"jdgk-cms/internal/worker"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps 是註冊路由需要的所有元件
type Deps struct {
	DB      database.DB
	Cache   cache.Cache
	Workers worker.Pool
	Mailer  mail.Sender
	Storage upload.Storage
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	JWTSecret string
	JWTTTL    time.Duration

	ContactTo     string
	ContactLimit  middleware.RateLimitConfig
	UploadDir     string
	UploadMaxSize int64
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	db := d.DB

	e.GET("/", handler.RootHandler())
	e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	// 本機儲存的上傳檔案
	if d.UploadDir != "" {
		e.Static("/uploads", d.UploadDir)
	}

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, d.Cache))

	// 登入與目前使用者
	api.POST("/auth/login", handler.LoginHandler(db, d.JWTSecret, d.JWTTTL))
	api.GET("/auth/session", handler.SessionHandler(db), middleware.RequireAuth(d.JWTSecret))

	// Users；角色只儲存不做權限檢查
	api.GET("/users", handler.ListUsersHandler(db))
	admin := api.Group("/admin/users")
	admin.GET("", handler.ListUsersHandler(db))
	admin.POST("", handler.CreateUserHandler(db))
	admin.GET("/:id", handler.GetUserHandler(db))
	admin.PUT("/:id", handler.UpdateUserHandler(db))
	admin.PATCH("/:id", handler.UpdateUserHandler(db))
	admin.PUT("/:id/role", handler.UpdateUserRoleHandler(db))
	admin.DELETE("/:id", handler.DeleteUserHandler(db))

	pages := api.Group("/pages")
	pages.GET("", handler.ListPagesHandler(db))
	pages.POST("", handler.CreatePageHandler(db))
	pages.GET("/slug/:slug", handler.GetPageBySlugHandler(db))
	pages.GET("/:id", handler.GetPageHandler(db))
	pages.PUT("/:id", handler.UpdatePageHandler(db))
	pages.PATCH("/:id", handler.UpdatePageHandler(db))
	pages.DELETE("/:id", handler.DeletePageHandler(db))

	services := api.Group("/services")
	services.GET("", handler.ListServicesHandler(db))
	services.POST("", handler.CreateServiceHandler(db))
	services.GET("/slug/:slug", handler.GetServiceBySlugHandler(db))
	services.GET("/:id", handler.GetServiceHandler(db))
	services.PUT("/:id", handler.UpdateServiceHandler(db))
	services.PATCH("/:id", handler.UpdateServiceHandler(db))
	services.DELETE("/:id", handler.DeleteServiceHandler(db))

	posts := api.Group("/blog_posts")
	posts.GET("", handler.ListBlogPostsHandler(db))
	posts.POST("", handler.CreateBlogPostHandler(db))
	posts.GET("/slug/:slug", handler.GetBlogPostBySlugHandler(db))
	posts.GET("/:id", handler.GetBlogPostHandler(db))
	posts.PUT("/:id", handler.UpdateBlogPostHandler(db))
	posts.PATCH("/:id", handler.UpdateBlogPostHandler(db))
	posts.DELETE("/:id", handler.DeleteBlogPostHandler(db))

	jobs := api.Group("/job_listings")
	jobs.GET("", handler.ListJobListingsHandler(db))
	jobs.POST("", handler.CreateJobListingHandler(db))
	jobs.GET("/:id", handler.GetJobListingHandler(db))
	jobs.PUT("/:id", handler.UpdateJobListingHandler(db))
	jobs.PATCH("/:id", handler.UpdateJobListingHandler(db))
	jobs.DELETE("/:id", handler.DeleteJobListingHandler(db))

	testimonials := api.Group("/testimonials")
	testimonials.GET("", handler.ListTestimonialsHandler(db))
	testimonials.POST("", handler.CreateTestimonialHandler(db))
	testimonials.GET("/:id", handler.GetTestimonialHandler(db))
	testimonials.PUT("/:id", handler.UpdateTestimonialHandler(db))
	testimonials.PATCH("/:id", handler.UpdateTestimonialHandler(db))
	testimonials.DELETE("/:id", handler.DeleteTestimonialHandler(db))

	team := api.Group("/team_members")
	team.GET("", handler.ListTeamMembersHandler(db))
	team.POST("", handler.CreateTeamMemberHandler(db))
	team.GET("/:id", handler.GetTeamMemberHandler(db))
	team.PUT("/:id", handler.UpdateTeamMemberHandler(db))
	team.PATCH("/:id", handler.UpdateTeamMemberHandler(db))
	team.DELETE("/:id", handler.DeleteTeamMemberHandler(db))

	api.GET("/settings", handler.ListSettingsHandler(db))
	api.POST("/settings/bulk_update", handler.BulkUpdateSettingsHandler(db))
	api.GET("/settings/:key", handler.GetSettingHandler(db))

	api.GET("/analytics_data", handler.ListAnalyticsHandler(db))
	api.POST("/analytics_data", handler.CreateAnalyticsHandler(db))

	api.POST("/contact", handler.ContactHandler(handler.ContactDeps{
		Pool:    d.Workers,
		Sender:  d.Mailer,
		To:      d.ContactTo,
		Metrics: d.Metrics,
	}), middleware.RateLimit(d.Cache, d.ContactLimit, d.Logger))

	api.POST("/storage/upload", handler.UploadHandler(d.Storage, d.UploadMaxSize))
}
