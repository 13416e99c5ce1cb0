package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/librarium/catalog"
)

type classifyRequest struct {
	Query     string   `json:"query" binding:"required"`
	Threshold *float64 `json:"threshold"`
}

type classifyResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Scenario   string  `json:"scenario"`
	VectorMode bool    `json:"vectorMode"`
}

type scenarioRequest struct {
	Query string `json:"query" binding:"required"`
}

type recommendationsRequest struct {
	Category string `json:"category" binding:"required"`
	Scenario string `json:"scenario"`
}

type matchBooksRequest struct {
	Category  string         `json:"category" binding:"required"`
	Items     []catalog.Item `json:"items"`
	Threshold *float64       `json:"threshold"`
}

type matchBooksResponse struct {
	Category string         `json:"category"`
	Items    []catalog.Item `json:"items"`
	Count    int            `json:"count"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    "librarium",
		"vectorMode": s.engine.VectorMode(),
	})
}

func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	threshold, ok := resolveThreshold(c, req.Threshold, -1)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var category string
	var confidence float64
	if threshold < 0 {
		category, confidence = s.engine.Classify(ctx, req.Query)
	} else {
		category, confidence = s.engine.ClassifyWithThreshold(ctx, req.Query, threshold)
	}

	c.JSON(http.StatusOK, classifyResponse{
		Category:   category,
		Confidence: confidence,
		Scenario:   s.engine.DetectScenario(req.Query),
		VectorMode: s.engine.VectorMode(),
	})
}

func (s *Server) handleScenario(c *gin.Context) {
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenario": s.engine.DetectScenario(req.Query)})
}

func (s *Server) handleRecommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, s.engine.Recommendations(req.Category, req.Scenario))
}

func (s *Server) handleMatchBooks(c *gin.Context) {
	var req matchBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	threshold, ok := resolveThreshold(c, req.Threshold, -1)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	items := req.Items
	if items == nil {
		if s.catalog == nil {
			badRequest(c, "items are required when no catalog backend is configured")
			return
		}
		fetched, err := s.catalog.Items(ctx)
		if err != nil {
			s.logger.Error("catalog fetch failed", "err", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog backend unavailable"})
			return
		}
		items = fetched
	}

	var matched []catalog.Item
	if threshold < 0 {
		matched = s.engine.MatchBooks(ctx, items, req.Category)
	} else {
		matched = s.engine.MatchBooksWithThreshold(ctx, items, req.Category, threshold)
	}

	c.JSON(http.StatusOK, matchBooksResponse{
		Category: req.Category,
		Items:    matched,
		Count:    len(matched),
	})
}

// resolveThreshold validates an optional request threshold. The sentinel is
// returned when the request carries none, letting the engine defaults
// apply. A false return means the response has already been written.
func resolveThreshold(c *gin.Context, threshold *float64, sentinel float64) (float64, bool) {
	if threshold == nil {
		return sentinel, true
	}
	if *threshold < 0 || *threshold > 1 {
		badRequest(c, "threshold must be between 0 and 1")
		return 0, false
	}
	return *threshold, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
