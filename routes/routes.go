package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/controllers"
	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/middleware"
	"github.com/TuanKiet52/APIRadio/ws"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, docs *docview.Projector) {
	r.Use(middleware.DBMiddleware(db), middleware.DocsMiddleware(docs))

	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	// ---------------- AUTH ----------------
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	// ---------------- PUBLIC READS ----------------
	api.GET("/news", controllers.GetNews)
	api.GET("/news/:id", controllers.GetNewsByID)
	api.GET("/news-categories", controllers.GetNewsCategories)
	api.GET("/news-categories/:id", controllers.GetNewsCategoryByID)

	api.GET("/podcasts", controllers.GetPodcasts)
	api.GET("/podcasts/:id", controllers.GetPodcastByID)
	api.GET("/podcast-categories", controllers.GetPodcastCategories)
	api.GET("/podcast-categories/:id", controllers.GetPodcastCategoryByID)

	api.GET("/personalities", controllers.GetPersonalities)
	api.GET("/personalities/:id", controllers.GetPersonalityByID)
	api.GET("/programs", controllers.GetPrograms)
	api.GET("/programs/:id", controllers.GetProgramByID)
	api.GET("/events", controllers.GetEvents)
	api.GET("/events/:id", controllers.GetEventByID)
	api.GET("/galleries", controllers.GetGalleries)
	api.GET("/galleries/:id", controllers.GetGalleryByID)
	api.GET("/music", controllers.GetMusicTracks)
	api.GET("/music/:id", controllers.GetMusicTrackByID)
	api.GET("/stations", controllers.GetStations)
	api.GET("/stations/:id", controllers.GetStationByID)

	// ---------------- ANALYTICS ----------------
	api.POST("/listen-record", controllers.RecordListen)
	api.GET("/listen-query/:id", middleware.AuthMiddleware(), controllers.QueryListens)

	// ---------------- DOCUMENT VIEW ----------------
	docsGroup := api.Group("/docs")
	{
		docsGroup.GET("/:collection", controllers.ListDocs)
		docsGroup.GET("/:collection/:id", controllers.GetDocByID)
	}

	// ---------------- ADMIN ----------------
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/stats", controllers.GetStats)
		admin.GET("/listen-report/:id", controllers.ListenReport)
		admin.POST("/upload", controllers.Upload)

		// Account management is for admins only; editors keep the rest
		// of the dashboard.
		users := admin.Group("/users", middleware.RequireRole("admin"))
		users.GET("", controllers.GetUsers)
		users.GET("/:id", controllers.GetUserByID)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)

		admin.POST("/news-categories", controllers.CreateNewsCategory)
		admin.PUT("/news-categories/:id", controllers.UpdateNewsCategory)
		admin.DELETE("/news-categories/:id", controllers.DeleteNewsCategory)

		admin.POST("/podcast-categories", controllers.CreatePodcastCategory)
		admin.PUT("/podcast-categories/:id", controllers.UpdatePodcastCategory)
		admin.DELETE("/podcast-categories/:id", controllers.DeletePodcastCategory)

		admin.POST("/news", controllers.CreateNews)
		admin.PUT("/news/:id", controllers.UpdateNews)
		admin.DELETE("/news/:id", controllers.DeleteNews)

		admin.POST("/podcasts", controllers.CreatePodcast)
		admin.PUT("/podcasts/:id", controllers.UpdatePodcast)
		admin.DELETE("/podcasts/:id", controllers.DeletePodcast)

		admin.POST("/personalities", controllers.CreatePersonality)
		admin.PUT("/personalities/:id", controllers.UpdatePersonality)
		admin.DELETE("/personalities/:id", controllers.DeletePersonality)

		admin.POST("/programs", controllers.CreateProgram)
		admin.PUT("/programs/:id", controllers.UpdateProgram)
		admin.DELETE("/programs/:id", controllers.DeleteProgram)

		admin.POST("/events", controllers.CreateEvent)
		admin.PUT("/events/:id", controllers.UpdateEvent)
		admin.DELETE("/events/:id", controllers.DeleteEvent)

		admin.POST("/galleries", controllers.CreateGallery)
		admin.POST("/galleries/:id/images", controllers.AddGalleryImage)
		admin.PUT("/galleries/:id", controllers.UpdateGallery)
		admin.DELETE("/galleries/:id", controllers.DeleteGallery)

		admin.POST("/music", controllers.CreateMusicTrack)
		admin.PUT("/music/:id", controllers.UpdateMusicTrack)
		admin.DELETE("/music/:id", controllers.DeleteMusicTrack)

		admin.POST("/stations", controllers.CreateStation)
		admin.PUT("/stations/:id", controllers.UpdateStation)
		admin.DELETE("/stations/:id", controllers.DeleteStation)
	}

	// ---------------- WebSockets ----------------
	r.GET("/ws/listens", func(c *gin.Context) {
		ws.HandleListenWS(c.Writer, c.Request)
	})
}
