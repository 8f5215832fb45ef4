package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"StockScope/internal/analyzer"
)

// Server exposes the latest analysis snapshots over HTTP: a JSON API for the
// dashboard frontend plus server-rendered chart pages.
type Server struct {
	addr      string
	store     *analyzer.Store
	maxPoints int
	router    *gin.Engine
	httpSrv   *http.Server
}

// New creates the HTTP server around an analysis store.
func New(addr string, store *analyzer.Store, maxPoints int) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		addr:      addr,
		store:     store,
		maxPoints: maxPoints,
		router:    router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/chart/:symbol", s.handleChart)

	api := s.router.Group("/api/v1")
	api.GET("/symbols", s.handleSymbols)
	api.GET("/analysis/:symbol", s.handleAnalysis)
}

// Start begins serving. Blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{Addr: s.addr, Handler: s.router}
	log.Printf("[INFO] http server listening on %s", s.addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "symbols": len(s.store.Symbols())})
}

func (s *Server) handleSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symbols": s.store.Symbols()})
}

func (s *Server) handleAnalysis(c *gin.Context) {
	symbol := c.Param("symbol")
	a, ok := s.store.Get(symbol)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis for symbol"})
		return
	}

	maxPoints := s.maxPoints
	if v := c.Query("max_points"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_points"})
			return
		}
		maxPoints = n
	}

	c.JSON(http.StatusOK, toAnalysisDTO(a, maxPoints))
}

func (s *Server) handleChart(c *gin.Context) {
	symbol := c.Param("symbol")
	a, ok := s.store.Get(symbol)
	if !ok {
		c.String(http.StatusNotFound, "no analysis for %s", symbol)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := renderChartPage(c.Writer, a, s.maxPoints); err != nil {
		log.Printf("[ERROR] render chart %s: %v", symbol, err)
	}
}
