// Package api is the thin HTTP boundary over the analysis pipeline:
// upload a document, get the composite report back. Persistence, auth
// and report rendering live outside this service.
package api

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/sme-finance-analyzer/internal/logger"
	"github.com/insightdelivered/sme-finance-analyzer/internal/parser"
	"github.com/insightdelivered/sme-finance-analyzer/internal/pipeline"
)

const version = "1.0.0"

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Pipeline *pipeline.Pipeline
	Log      zerolog.Logger
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.Health)
	app.Post("/api/analyze", h.Analyze)
}

// Health reports service liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"version": version,
		"engine":  "fiber",
	})
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Analyze accepts a multipart upload (form field "file" plus
// company_name, industry and optional language) and returns the report
// document. Ingestion precondition violations come back as 400;
// extraction problems as 422.
func (h *Handler) Analyze(c *fiber.Ctx) error {
	started := time.Now()
	log := h.Log.With().
		Str("request_id", uuid.NewString()).
		Logger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Could not read uploaded file.")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Could not read uploaded file.")
	}

	language := c.FormValue("language")
	if language == "" {
		language = "English"
	}

	ctx := logger.WithContext(c.UserContext(), log)
	report, err := h.Pipeline.Analyze(ctx, pipeline.Request{
		Filename: fileHeader.Filename,
		Data:     data,
		Company:  c.FormValue("company_name"),
		Industry: c.FormValue("industry"),
		Language: language,
	})
	if err != nil {
		log.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("analysis rejected")
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, parser.ErrNoTransactions) || errors.Is(err, parser.ErrNoAmountColumn) {
			status = fiber.StatusBadRequest
		}
		return writeError(c, status, err.Error())
	}

	log.Info().
		Str("filename", fileHeader.Filename).
		Dur("elapsed", time.Since(started)).
		Int("health_score", report.HealthScore).
		Msg("analysis complete")
	return c.JSON(report)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorResponse{Success: false, Error: msg})
}
