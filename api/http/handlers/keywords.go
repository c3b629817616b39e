package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/skillscan/api/http/presenter"
	"github.com/artem13815/skillscan/pkg/keywords"
	"github.com/artem13815/skillscan/pkg/resume"
)

// Fixed client-facing messages.
const (
	msgNotReady    = "NLP service not ready. Check server logs."
	msgNotJSON     = "Request must be JSON"
	msgEmptyBody   = "Request body is empty or not valid JSON"
	msgNoText      = "No 'text' field provided or text is empty in JSON body"
	msgProcessing  = "Failed to process text due to an internal error"
	msgFileMissing = "file is required (pdf, docx or txt)"
	msgFileEmpty   = "file contains no extractable text"
)

// HeaderExtractionID carries the history id of a stored extraction.
const HeaderExtractionID = "X-Extraction-ID"

// KeywordsHandler serves keyword extraction from JSON text and uploaded files.
type KeywordsHandler struct {
	svc      keywords.UseCase
	log      *slog.Logger
	maxBytes int64
}

func NewKeywordsHandler(svc keywords.UseCase, maxBytes int64) *KeywordsHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &KeywordsHandler{
		svc:      svc,
		log:      slog.Default().With("component", "http"),
		maxBytes: maxBytes,
	}
}

type extractRequest struct {
	Text string `json:"text" example:"Senior Python developer with AWS and React experience."`
}

// Home: liveness banner.
// @Summary Service banner
// @Tags    keywords
// @Produce plain
// @Success 200 {string} string "NLP Service is running!"
// @Router  / [get]
func (h *KeywordsHandler) Home(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("NLP Service is running!")
}

// Extract returns the skill keywords found in the "text" field.
// @Summary     Extract skill keywords from text
// @Description Runs the phrase matcher and the entity recognizer over the text and returns the sorted union.
// @Tags        keywords
// @Accept      json
// @Produce     json
// @Param       body body extractRequest true "Text to analyse"
// @Success     200 {object} presenter.KeywordsResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /extract-keywords [post]
func (h *KeywordsHandler) Extract(c *fiber.Ctx) error {
	if err := h.svc.Ready(); err != nil {
		h.log.Error("extraction requested before nlp is ready", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, msgNotReady)
	}
	if !isJSON(c.Get(fiber.HeaderContentType)) {
		h.log.Warn("request is not json", "contentType", c.Get(fiber.HeaderContentType))
		return presenter.Error(c, http.StatusBadRequest, msgNotJSON)
	}

	var body any
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil || isEmptyJSON(body) {
		h.log.Warn("request body empty or invalid json")
		return presenter.Error(c, http.StatusBadRequest, msgEmptyBody)
	}
	// Не-объекты и нестроковые значения трактуем как отсутствие поля text.
	obj, _ := body.(map[string]any)
	text, _ := obj["text"].(string)
	if strings.TrimSpace(text) == "" {
		h.log.Warn("no 'text' field provided or text is empty")
		return presenter.Error(c, http.StatusBadRequest, msgNoText)
	}

	res, err := h.svc.Extract(c.UserContext(), keywords.Request{Text: text, Source: keywords.SourceText})
	if err != nil {
		return h.extractError(c, err, msgNoText)
	}
	return h.reply(c, res)
}

// ExtractFile returns the skill keywords found in an uploaded resume.
// @Summary     Extract skill keywords from a resume file
// @Description Accepts PDF, DOCX or TXT, extracts the text and runs the same pipeline as /extract-keywords.
// @Tags        keywords
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Resume (PDF, DOCX or TXT)"
// @Success     200 {object} presenter.KeywordsResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /extract-keywords/file [post]
func (h *KeywordsHandler) ExtractFile(c *fiber.Ctx) error {
	if err := h.svc.Ready(); err != nil {
		h.log.Error("extraction requested before nlp is ready", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, msgNotReady)
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, msgFileMissing)
	}
	if !resume.Supported(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ParseText(fh.Filename, data)
	if err != nil {
		h.log.Warn("failed to parse uploaded file", "filename", fh.Filename, "error", err)
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read file: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		return presenter.Error(c, http.StatusBadRequest, msgFileEmpty)
	}

	res, err := h.svc.Extract(c.UserContext(), keywords.Request{
		Text:     text,
		Source:   keywords.SourceFile,
		Filename: fh.Filename,
	})
	if err != nil {
		return h.extractError(c, err, msgFileEmpty)
	}
	return h.reply(c, res)
}

func (h *KeywordsHandler) reply(c *fiber.Ctx, res keywords.Result) error {
	if res.ID != uuid.Nil {
		c.Set(HeaderExtractionID, res.ID.String())
	}
	kw := res.Keywords
	if kw == nil {
		kw = []string{}
	}
	return presenter.JSON(c, http.StatusOK, presenter.KeywordsResponse{Keywords: kw})
}

func (h *KeywordsHandler) extractError(c *fiber.Ctx, err error, emptyMsg string) error {
	switch {
	case errors.Is(err, keywords.ErrNotReady):
		return presenter.Error(c, http.StatusInternalServerError, msgNotReady)
	case errors.Is(err, keywords.ErrEmptyText):
		return presenter.Error(c, http.StatusBadRequest, emptyMsg)
	default:
		h.log.Error("error during keyword extraction", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, msgProcessing)
	}
}

// isJSON accepts application/json and application/*+json.
func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == fiber.MIMEApplicationJSON ||
		(strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}

func isEmptyJSON(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
