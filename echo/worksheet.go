package echo

import (
	"net/http"
	"time"

	"github.com/jbetz/lessonforge"
	"github.com/labstack/echo/v4"
)

type fetchContentRequest struct {
	URL string `json:"url"`
}

// handleFetchContent extracts educational content from a URL.
func (s *Server) handleFetchContent(c echo.Context) error {
	var req fetchContentRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID, "invalid request body"))
	}
	if req.URL == "" {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID, "URL is required"))
	}
	if s.Extractor == nil {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EUNAVAILABLE, "content extraction is not available"))
	}

	extraction, err := s.Extractor.Extract(c.Request().Context(), req.URL)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"contentText": extraction.ContentText,
		"source":      extraction.Source,
	})
}

type generateRequest struct {
	Resource      *lessonforge.Resource `json:"resource"`
	ChildName     string                `json:"childName"`
	Grade         string                `json:"grade"`
	WorksheetType lessonforge.Type      `json:"worksheetType"`
}

// handleGenerate builds a worksheet from a resource.
func (s *Server) handleGenerate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID, "invalid request body"))
	}
	if req.Resource == nil || req.ChildName == "" || req.Grade == "" || req.WorksheetType == "" {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID,
			"Resource, child name, grade, and worksheet type are required"))
	}

	ws := lessonforge.Generate(req.Resource, req.ChildName, req.Grade, req.WorksheetType)

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"worksheet": ws,
	})
}

// handleTypes recommends worksheet types for a subject and grade.
func (s *Server) handleTypes(c echo.Context) error {
	subject := c.QueryParam("subject")
	grade := c.QueryParam("grade")
	if subject == "" || grade == "" {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID, "Subject and grade are required"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"worksheetTypes": lessonforge.RecommendedTypes(subject, grade),
		"allTypes":       lessonforge.Types(),
	})
}

type answerKeyRequest struct {
	Resource      *lessonforge.Resource `json:"resource"`
	WorksheetType lessonforge.Type      `json:"worksheetType"`
}

// handleAnswerKey builds the answer key for a worksheet.
func (s *Server) handleAnswerKey(c echo.Context) error {
	var req answerKeyRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID, "invalid request body"))
	}
	if req.Resource == nil || req.WorksheetType == "" {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EINVALID,
			"Resource and worksheet type are required"))
	}

	key := lessonforge.GenerateAnswerKey(req.Resource, req.WorksheetType)

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"answerKey": key,
	})
}

// handleUsage reports scrape usage for the current month.
func (s *Server) handleUsage(c echo.Context) error {
	if s.Scrapes == nil {
		return s.errorResponse(c, lessonforge.Errorf(lessonforge.EUNAVAILABLE, "usage tracking is not available"))
	}

	ctx := c.Request().Context()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	count, err := s.Scrapes.CountScrapesSince(ctx, monthStart)
	if err != nil {
		return s.errorResponse(c, err)
	}

	recent, err := s.Scrapes.FindScrapes(ctx, 10)
	if err != nil {
		return s.errorResponse(c, err)
	}
	if recent == nil {
		recent = []*lessonforge.ScrapeRecord{}
	}

	remaining := 0
	if s.MonthlyLimit > 0 && count < s.MonthlyLimit {
		remaining = s.MonthlyLimit - count
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"usageCount":     count,
		"remainingUsage": remaining,
		"limitReached":   s.MonthlyLimit > 0 && count >= s.MonthlyLimit,
		"recentScrapes":  recent,
	})
}
