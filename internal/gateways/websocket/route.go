package websocket

import "github.com/gin-gonic/gin"

type Routes interface {
	GET(path, name string, handler gin.HandlerFunc)
}

func RegisterRoutes(rg Routes, hub *Hub) {
	rg.GET("/ws", "ws", hub.ServeWS)
}
