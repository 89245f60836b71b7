package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"decision-toolkit/internal/framework"
	"decision-toolkit/internal/store"
	"decision-toolkit/internal/util"
)

// Config defines server dependencies.
type Config struct {
	DataDir        string
	AllowedOrigins []string
}

// Server wires HTTP handlers with the registry and decision store.
type Server struct {
	store          *store.Store
	registry       *framework.Registry
	allowedOrigins []string
}

// NewServer constructs the API server.
func NewServer(cfg Config, registry *framework.Registry) (*Server, error) {
	if registry == nil {
		return nil, errors.New("framework registry required")
	}
	st, err := store.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &Server{
		store:          st,
		registry:       registry,
		allowedOrigins: cfg.AllowedOrigins,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/frameworks", s.handleListFrameworks)
		api.GET("/frameworks/:key", s.handleGetFramework)
		api.GET("/decisions", s.handleListDecisions)
		api.POST("/decisions", s.handleCreateDecision)
		api.GET("/decisions/:slug", s.handleGetDecision)
		api.POST("/decisions/:slug/frameworks/:key", s.handleRunFramework)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListFrameworks(c *gin.Context) {
	keys := s.registry.Keys()
	items := make([]FrameworkDTO, 0, len(keys))
	for _, key := range keys {
		fw, err := s.registry.Lookup(key)
		if err != nil {
			s.renderError(c, http.StatusInternalServerError, err)
			return
		}
		items = append(items, FrameworkDTO{Key: key, Name: fw.Name(), Inputs: fw.RequiredInputs()})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleGetFramework(c *gin.Context) {
	key := c.Param("key")
	fw, err := s.registry.Lookup(key)
	if err != nil {
		s.renderError(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, FrameworkDTO{Key: key, Name: fw.Name(), Inputs: fw.RequiredInputs()})
}

func (s *Server) handleListDecisions(c *gin.Context) {
	items, skipped, err := s.store.List()
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, DecisionsResponse{Items: items, Skipped: skipped})
}

func (s *Server) handleCreateDecision(c *gin.Context) {
	var req CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("decision_text required: %w", err))
		return
	}

	slug, err := s.store.Create(req.DecisionText)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.renderError(c, http.StatusConflict, err)
		} else {
			s.renderError(c, http.StatusBadRequest, err)
		}
		return
	}

	logrus.WithField("slug", slug).Info("decision created")
	c.JSON(http.StatusCreated, CreateDecisionResponse{Slug: slug})
}

func (s *Server) handleGetDecision(c *gin.Context) {
	decision, err := s.store.Load(c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.renderError(c, http.StatusNotFound, err)
		} else {
			s.renderError(c, http.StatusInternalServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, decision)
}

func (s *Server) handleRunFramework(c *gin.Context) {
	slug := c.Param("slug")
	key := c.Param("key")

	fw, err := s.registry.Lookup(key)
	if err != nil {
		s.renderError(c, http.StatusNotFound, err)
		return
	}
	if _, err := s.store.Load(slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.renderError(c, http.StatusNotFound, err)
		} else {
			s.renderError(c, http.StatusInternalServerError, err)
		}
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	inputs := coerceInputs(raw, fw.RequiredInputs())
	if err := fw.SetInputs(inputs); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	timer := util.StartTimer()
	result, err := fw.Execute()
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	snapshot := fw.Snapshot()
	record := store.FrameworkRecord{
		Name:   snapshot.Name,
		Inputs: snapshot.Inputs,
		Result: snapshot.Result,
	}
	if err := s.store.Upsert(slug, record); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.renderError(c, http.StatusNotFound, err)
		} else {
			s.renderError(c, http.StatusInternalServerError, err)
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"slug":        slug,
		"framework":   key,
		"duration_ms": timer.ElapsedMs(),
	}).Info("framework executed")

	c.JSON(http.StatusOK, RunFrameworkResponse{Success: true, Result: result})
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
