package api

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/insightdelivered/credit-report-extractor/internal/extractor"
	"github.com/insightdelivered/credit-report-extractor/internal/models"
	"github.com/insightdelivered/credit-report-extractor/internal/parser"
)

// maxTextLen bounds the text handed to the engine. Worst-case regex
// behavior on huge inputs is the engine's one availability hazard, so the
// service boundary enforces the ceiling the engine itself does not.
const maxTextLen = 8 << 20

// ParseResponse is the JSON body of POST /api/parse.
type ParseResponse struct {
	Success        bool                   `json:"success"`
	Error          string                 `json:"error,omitempty"`
	Result         *models.ParseResult    `json:"result,omitempty"`
	ReviewAccounts []models.ReviewAccount `json:"reviewAccounts,omitempty"`
}

// Handler wires the parsing engine into HTTP.
type Handler struct {
	Registry *parser.Registry
	Log      *slog.Logger
}

func NewHandler(registry *parser.Registry, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Registry: registry, Log: log}
}

// RegisterRoutes sets up the API routes on a fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/parse", h.HandleParse)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "credit-report-extractor",
	})
}

// HandleParse accepts either a multipart PDF upload (field "file", optional
// field "password") or raw report text (field "text"), runs the engine, and
// returns the ParseResult plus the simplified records for the review flow.
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	reqID := uuid.NewString()
	log := h.Log.With("request_id", reqID)

	text, err := h.reportText(c)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, extractor.ErrPasswordRequired) || errors.Is(err, extractor.ErrIncorrectPassword) {
			status = fiber.StatusUnprocessableEntity
		}
		log.Warn("parse request rejected", "error", err)
		return c.Status(status).JSON(ParseResponse{Success: false, Error: err.Error()})
	}
	if len(text) > maxTextLen {
		log.Warn("parse request rejected", "reason", "input too large", "bytes", len(text))
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(ParseResponse{
			Success: false, Error: "report text exceeds size limit",
		})
	}

	result := h.Registry.ParseReport(text)

	review := make([]models.ReviewAccount, 0, len(result.Accounts))
	for _, a := range result.Accounts {
		review = append(review, a.ToReview())
	}

	log.Info("report parsed",
		"bureau", result.Bureau,
		"accounts", result.Summary.TotalAccounts,
		"errors", len(result.Summary.Errors))

	return c.JSON(ParseResponse{
		Success:        true,
		Result:         result,
		ReviewAccounts: review,
	})
}

// reportText resolves the request body into report text, extracting from
// PDF when a file was uploaded.
func (h *Handler) reportText(c *fiber.Ctx) (string, error) {
	if text := c.FormValue("text"); text != "" {
		return text, nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", errors.New("provide a pdf upload in \"file\" or raw text in \"text\"")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return extractor.ExtractText(data, c.FormValue("password"))
}
