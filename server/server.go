// Package server exposes the chat assistant and profile artifacts over HTTP.
package server

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/profilescribe/profilescribe/chat"
	"github.com/profilescribe/profilescribe/config"
	"github.com/profilescribe/profilescribe/profile"
)

// ChatService is the completion dependency of the API.
type ChatService interface {
	GetChatCompletion(ctx context.Context, messages []chat.Message) (chat.Response, error)
	Model() string
}

// Extractor executes the profile extraction tool.
type Extractor interface {
	Extract(ctx context.Context, email, password, profileURL string) (*profile.Profile, error)
}

// Server holds the API dependencies.
type Server struct {
	settings  *config.Settings
	chat      ChatService
	extractor Extractor
}

// New creates a Server.
func New(settings *config.Settings, chatSvc ChatService, extractor Extractor) *Server {
	return &Server{settings: settings, chat: chatSvc, extractor: extractor}
}

// Router builds the gin engine with CORS, request IDs, and all routes.
func (s *Server) Router() *gin.Engine {
	if !s.settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsCfg))
	r.Use(requestID())

	api := r.Group("/api")
	api.POST("/chat", s.handleChat)
	api.POST("/test_completion", s.handleTestCompletion)
	api.GET("/health", s.handleHealth)
	api.GET("/profile", s.handleProfile)
	api.GET("/profile/download", s.handleProfileDownload)

	r.Static("/static", s.settings.StaticDir)
	r.Static("/output", s.settings.OutputDir)

	return r
}

// requestID tags every response with a unique id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
