package session

import "github.com/gin-gonic/gin"

// Routes is the named-route registration surface the router's table
// scope provides.
type Routes interface {
	POST(path, name string, handler gin.HandlerFunc)
}

func RegisterRoutes(rg Routes, handler Handler) {
	rg.POST("/session", "session", handler.CreateSession)
}
