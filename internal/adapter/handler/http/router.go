package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguenfoude/bs/internal/adapter/config"
	"github.com/oguenfoude/bs/internal/adapter/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.Config,
	orderHandler *OrderHandler,
	m *metrics.Registry) (*Router, error) {

	router := gin.New()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"ledgerBackend": conf.App.LedgerBackend,
			"sheetsEnabled": conf.Sheets.Enabled,
			"emailEnabled":  conf.SMTP.Enabled,
		})
	})

	api := router.Group("/api")
	{
		api.POST("/submit-order", orderHandler.SubmitOrder)
		api.OPTIONS("/submit-order", func(ctx *gin.Context) {
			ctx.Status(http.StatusOK)
		})
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
