package server

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stegex/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// StartServer godoc
// @title stegex API
// @version 1.0
// @description An API to extract LSB-embedded payloads from images
// @BasePath /api/v1
func StartServer(port string) error {
	return setupRouter().Run(fmt.Sprintf(":%s", port))
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/extract/image", ExtractImageHandler)
	v1.POST("/capacity/image", ImageCapacityHandler)

	return r
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"request_size\": \"%s\", \"request_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(param.BodySize)),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
