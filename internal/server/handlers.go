package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/lesson"
)

type handler struct {
	gen     Generator
	version string
	now     func() time.Time
	log     *zap.Logger
}

type scoreRequest struct {
	Quiz    []lesson.QuizItem `json:"quiz"`
	Answers []lesson.Answer   `json:"answers"`
}

type portfolioRequest struct {
	Lesson  lesson.LessonContent `json:"lesson"`
	Student lesson.Student       `json:"student"`
	Answers []lesson.Answer      `json:"answers"`
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"providers": h.gen.Providers(),
	})
}

// generate always answers 200 with a lesson once the body is readable;
// provider trouble shows up in meta.reason instead.
func (h *handler) generate(c *gin.Context) {
	var req lesson.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	content := h.gen.Generate(c.Request.Context(), req)
	if content.Meta.Degraded() {
		h.log.Info("served degraded lesson",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("provider", content.Meta.Provider),
			zap.String("reason", content.Meta.Reason))
	}
	c.JSON(http.StatusOK, content)
}

func (h *handler) themes(c *gin.Context) {
	c.JSON(http.StatusOK, lesson.Themes())
}

func (h *handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson.Score(req.Quiz, req.Answers))
}

func (h *handler) portfolio(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := lesson.NewPortfolio(req.Student, req.Lesson, req.Answers, h.now())
	if err != nil {
		badRequest(c, err)
		return
	}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rendering portfolio failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
