package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"website_copywriter/internal/copywriter"
	"website_copywriter/internal/store"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline *copywriter.Pipeline
	runStore *store.Store
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(pipeline *copywriter.Pipeline, runStore *store.Store) *APIHandler {
	return &APIHandler{
		pipeline: pipeline,
		runStore: runStore,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateCopyRequest struct {
	Product             string   `json:"product" binding:"required"`
	Tone                string   `json:"tone"`
	Length              string   `json:"length"`
	Industry            string   `json:"industry"`
	TargetAudience      string   `json:"targetAudience" binding:"required"`
	BrandVoice          string   `json:"brandVoice"`
	UniqueSellingPoints []string `json:"uniqueSellingPoints"`
	Sections            []string `json:"sections" binding:"required"`
}

type GenerateCopyResponse struct {
	RunID string             `json:"runId"`
	File  string             `json:"file,omitempty"`
	Copy  *copywriter.Result `json:"copy"`
}

// --- API Handlers ---

// POST /copy/generate
func (h *APIHandler) GenerateCopy(c *gin.Context) {
	var req GenerateCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	copyReq := copywriter.CopyRequest{
		Product:             req.Product,
		Tone:                req.Tone,
		Length:              req.Length,
		Industry:            req.Industry,
		TargetAudience:      req.TargetAudience,
		BrandVoice:          req.BrandVoice,
		UniqueSellingPoints: req.UniqueSellingPoints,
	}

	log.Printf("Received generation request for product %q (%d sections)", req.Product, len(req.Sections))

	result, err := h.pipeline.Generate(c.Request.Context(), copyReq, req.Sections)
	if err != nil {
		var validationErr *copywriter.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		log.Printf("Error generating copy for product %q: %v", req.Product, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.New().String()
	record := store.RunRecord{
		RunID:       runID,
		Product:     req.Product,
		GeneratedAt: time.Now().UTC(),
		Copy:        result,
	}

	// Export failure doesn't invalidate the generated copy; report the run
	// without a file path instead.
	path, err := h.runStore.SaveRun(record)
	if err != nil {
		log.Printf("Error saving run %s: %v", runID, err)
		path = ""
	}

	log.Printf("Copy generation successful for product %q. Run ID: %s", req.Product, runID)
	c.JSON(http.StatusCreated, GenerateCopyResponse{RunID: runID, File: path, Copy: result})
}

// GET /copy/runs/:id
func (h *APIHandler) GetRun(c *gin.Context) {
	runID := c.Param("id")

	record, err := h.runStore.LoadRun(runID)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
			return
		}
		log.Printf("Error loading run %s: %v", runID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load run"})
		return
	}

	c.JSON(http.StatusOK, record)
}
