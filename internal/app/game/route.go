package game

import "github.com/gin-gonic/gin"

// Routes is the named-route registration surface the router's table
// scope provides.
type Routes interface {
	GET(path, name string, handler gin.HandlerFunc)
	POST(path, name string, handler gin.HandlerFunc)
}

func RegisterRoutes(rg Routes, handler Handler) {
	rg.GET("/board", "board", handler.GetBoard)
	rg.POST("/bingo", "bingo", handler.ClaimBingo)
}
