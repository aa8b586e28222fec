package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"

	"github.com/pixelbrew/filmic/internal"
	"github.com/pixelbrew/filmic/internal/imaging"
	"github.com/pixelbrew/filmic/internal/raster"
	"github.com/pixelbrew/filmic/internal/raster/stage"
)

// Serve starts the HTTP API: POST a PNG plus an optional pipeline config and
// get the processed PNG back.
func Serve(port int, debug bool) {
	internal.ShowVersion()
	internal.EnvironmentVars()

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	if err := healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{}); err != nil {
		log.Fatalf("failed to initialize healthcheck: %v", err)
	}

	r.GET("/v1/filmic/stages", listStagesHandler)
	r.POST("/v1/filmic/process", processHandler)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d...", port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP API Server failed to start on port %d: %v", port, err)
	}
}

func listStagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stages": []string{"grain", "enhance", "glow", "sharpen", "greyscale", "exposure"},
	})
}

// processHandler expects a multipart form with an "image" PNG file and an
// optional "pipeline" field holding the JSON stage config. With no config
// the default treatment is applied.
func processHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}

	stages := defaultStages(0)
	if pipelineJSON := c.PostForm("pipeline"); pipelineJSON != "" {
		stages, err = stage.Parse(strings.NewReader(pipelineJSON))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image file"})
		return
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := imaging.Decode(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to decode PNG: %v", err)})
		return
	}

	out, err := img.Pipeline(stages...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, raster.ErrInvalidKernel) || errors.Is(err, raster.ErrDimensionMismatch) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
