package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scriba-dev/scriba/internal/handlers"
	"github.com/scriba-dev/scriba/internal/store"
)

func New(conn *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userStore := store.NewUserStore(conn)

	users := handlers.NewUsers(userStore)
	articles := handlers.NewArticles(store.NewArticleStore(conn), userStore)
	health := handlers.NewHealth(conn)

	r.GET("/api/health", health.Check)

	r.POST("/users/", users.Create)
	r.GET("/users/:id", users.Get)

	r.POST("/articles/", articles.Create)
	r.GET("/articles/:id", articles.Get)
	r.PUT("/articles/update/:id", articles.Update)
	r.DELETE("/articles/delete/:id", articles.Delete)

	return r
}

func allowedOrigins() []string {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
