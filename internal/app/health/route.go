package health

import "github.com/gin-gonic/gin"

type Routes interface {
	GET(path, name string, handler gin.HandlerFunc)
}

func RegisterRoutes(rg Routes, handler Handler) {
	rg.GET("/health", "health", handler.Check)
}
