package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/kenken/internal/domain"
	"svw.info/kenken/internal/parser"
	"svw.info/kenken/internal/usecase"
)

// Handler exposes the solver and record store as a JSON API.
type Handler struct {
	UC  *usecase.Service
	Log *slog.Logger
}

func New(uc *usecase.Service, log *slog.Logger) *Handler {
	return &Handler{UC: uc, Log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/api/health", h.handleHealth)
	r.POST("/api/solve", h.handleSolve)
	r.GET("/api/puzzles", h.handleList)
	r.GET("/api/puzzles/:id", h.handleLoad)
}

// RequestLogger logs method, path, status, and duration for each request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type solveReq struct {
	Definition domain.Definition `json:"definition" binding:"required"`
	Name       string            `json:"name,omitempty"`
	Save       bool              `json:"save,omitempty"`
}

type solveResp struct {
	ID             string  `json:"id,omitempty"`
	Solved         bool    `json:"solved"`
	Solution       [][]int `json:"solution,omitempty"`
	Backtracks     int     `json:"backtracks"`
	RecursiveCalls int     `json:"recursiveCalls"`
	DurationMs     int64   `json:"durationMs"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}

	p, err := parser.Build(req.Definition)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, st, err := h.UC.Solve(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := solveResp{
		Solved:         ok,
		Backtracks:     st.Backtracks,
		RecursiveCalls: st.RecursiveCalls,
		DurationMs:     st.Duration.Milliseconds(),
	}
	if ok {
		resp.Solution = p.Grid()
	}

	if req.Save {
		rec := &domain.Record{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Width:          req.Definition.Width,
			Definition:     req.Definition,
			Solved:         ok,
			Backtracks:     st.Backtracks,
			RecursiveCalls: st.RecursiveCalls,
			DurationMs:     st.Duration.Milliseconds(),
			CreatedAt:      time.Now().Unix(),
		}
		if ok {
			rec.Solution = resp.Solution
		}
		if err := h.UC.Save(c.Request.Context(), rec); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.ID = rec.ID
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleList(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.RecordMeta{}
	}
	c.JSON(http.StatusOK, metas)
}

func (h *Handler) handleLoad(c *gin.Context) {
	rec, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
