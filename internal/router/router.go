package router

import (
	"bingo-backend/internal/app/game"
	"bingo-backend/internal/app/health"
	"bingo-backend/internal/app/session"
	"bingo-backend/internal/gateways/websocket"
	"bingo-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
	Table  *Table
}

func NewRouter(logger *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	engine.HandleMethodNotAllowed = true
	return &Router{Engine: engine, Table: NewTable()}
}

func (r *Router) RegisterGameRoutes(handler game.Handler) {
	game.RegisterRoutes(r.Table.Scope(r.Engine.Group("/")), handler)
}

func (r *Router) RegisterSessionRoutes(handler session.Handler) {
	session.RegisterRoutes(r.Table.Scope(r.Engine.Group("/api")), handler)
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Table.Scope(r.Engine.Group("/api")), handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Table.Scope(r.Engine.Group("/")), hub)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
