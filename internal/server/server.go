package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kbjutracker/internal/vision"
)

// Server wires the HTTP surface to a vision model. Requests are stateless:
// the model handle is the only shared value and it is safe for concurrent
// use, so handlers need no locking.
type Server struct {
	model vision.Model
	debug bool
}

func New(model vision.Model, debug bool) *Server {
	if debug {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Println("Debug logging enabled")
	}
	return &Server{
		model: model,
		debug: debug,
	}
}

// Router builds the Gin engine with all routes and middleware attached.
func (s *Server) Router(staticDir string, allowOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	if len(allowOrigins) == 0 {
		// Same default as the frontend expects: any origin may call us.
		r.Use(cors.Default())
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.POST("/analyze", s.handleAnalyze)
	r.GET("/health", s.handleHealth)

	// Serve the web frontend from the same binary when configured
	if staticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}

	return r
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func (s *Server) Start(port, staticDir string, allowOrigins []string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.Router(staticDir, allowOrigins),
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "KBJU tracker backend is running",
	})
}
