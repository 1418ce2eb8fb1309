// Package server exposes the saved deal collection over a read-only HTTP
// API, plus health and Prometheus endpoints.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealsync/internal/metrics"
	"dealsync/internal/model"
	"dealsync/internal/store"
)

// RunLister returns recorded sync runs, newest first.
type RunLister interface {
	ListRuns(ctx context.Context, limit int) ([]model.SyncRun, error)
}

// Server serves the deal collection read-only. It re-reads the data file
// per request; the sync pass replaces the file atomically, so a read always
// sees a complete document.
type Server struct {
	dataFile string
	history  RunLister
	log      *slog.Logger
}

// New creates a Server over the given data file. history may be nil, which
// disables the runs endpoint.
func New(dataFile string, history RunLister, log *slog.Logger) *Server {
	return &Server{dataFile: dataFile, history: history, log: log}
}

// Router builds the gin router with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.instrument)

	router.GET("/healthz", s.health)
	router.GET("/api/deals", s.deals)
	router.GET("/api/categories", s.categories)
	if s.history != nil {
		router.GET("/api/runs", s.runs)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("serving deals api", "addr", addr)
	return s.Router().Run(addr)
}

func (s *Server) instrument(c *gin.Context) {
	c.Next()
	metrics.HTTPRequestsTotal.WithLabelValues(
		c.Request.Method, c.FullPath(), strconv.Itoa(c.Writer.Status()),
	).Inc()
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "dealsync"})
}

// deals returns the collection, optionally filtered by main/sub category
// (case-insensitive). File order is preserved: newest first.
func (s *Server) deals(c *gin.Context) {
	coll, err := store.Load(s.dataFile)
	if err != nil {
		s.log.Error("load collection", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load collection"})
		return
	}

	main := strings.ToLower(c.Query("main"))
	sub := strings.ToLower(c.Query("sub"))

	deals := coll.Deals
	if main != "" || sub != "" {
		deals = make([]model.Deal, 0, len(coll.Deals))
		for _, d := range coll.Deals {
			if main != "" && strings.ToLower(d.MainCategory) != main {
				continue
			}
			if sub != "" && strings.ToLower(d.SubCategory) != sub {
				continue
			}
			deals = append(deals, d)
		}
	}

	for _, d := range deals {
		metrics.DealsServed.WithLabelValues(d.MainCategory).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"lastUpdated": coll.LastUpdated,
		"count":       len(deals),
		"deals":       deals,
	})
}

// categories returns the distinct main categories with their subcategories,
// in collection order.
func (s *Server) categories(c *gin.Context) {
	coll, err := store.Load(s.dataFile)
	if err != nil {
		s.log.Error("load collection", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load collection"})
		return
	}

	type category struct {
		Main string   `json:"main"`
		Subs []string `json:"subs"`
	}
	var order []string
	subs := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for _, d := range coll.Deals {
		if seen[d.MainCategory] == nil {
			seen[d.MainCategory] = make(map[string]bool)
			order = append(order, d.MainCategory)
		}
		if d.SubCategory != "" && !seen[d.MainCategory][d.SubCategory] {
			seen[d.MainCategory][d.SubCategory] = true
			subs[d.MainCategory] = append(subs[d.MainCategory], d.SubCategory)
		}
	}

	categories := make([]category, 0, len(order))
	for _, main := range order {
		categories = append(categories, category{Main: main, Subs: subs[main]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) runs(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	runs, err := s.history.ListRuns(ctx, limit)
	if err != nil {
		s.log.Error("list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
