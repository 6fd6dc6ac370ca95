package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valpere/aztran/internal/config"
	"github.com/valpere/aztran/internal/flow"
	"github.com/valpere/aztran/internal/languages"
	"github.com/valpere/aztran/internal/logger"
	"github.com/valpere/aztran/internal/translator"
)

type Handler struct {
	service translator.TranslationService
	creds   *translator.ServiceConfig
	flow    *flow.Flow
}

type errorResponse struct {
	Error string `json:"error"`
}

type translateResponse struct {
	Text        string `json:"text"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	Detected    string `json:"detected,omitempty"`
	Message     string `json:"message"`
	ResultLabel string `json:"resultLabel"`
}

type languagesResponse struct {
	Translation map[string]translator.LanguageInfo `json:"translation"`
}

type status struct {
	Level   string
	Message string
}

type pageData struct {
	Title       string
	Sources     []languages.Language
	Targets     []languages.Language
	Source      string
	Target      string
	Text        string
	Setup       string
	Statuses    []status
	ResultLabel string
	Result      string
}

// NewHandler wires the page and API handlers. creds is consulted on every
// request so no call reaches the service while credentials are missing.
func NewHandler(service translator.TranslationService, creds *translator.ServiceConfig) *Handler {
	return &Handler{
		service: service,
		creds:   creds,
		flow:    flow.New(service, flow.Config{}),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.POST("/", h.Submit)
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.POST("/translate", h.Translate)
	api.GET("/languages", h.Languages)
}

func (h *Handler) newPage() pageData {
	page := pageData{
		Title:   "Azure Translator",
		Sources: languages.Sources(),
		Targets: languages.Targets(),
		Source:  languages.DefaultSource,
		Target:  languages.DefaultTarget,
	}
	if err := h.creds.Check(); err != nil {
		page.Setup = flow.MsgSetup
	}
	return page
}

// Index renders the empty form.
func (h *Handler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", h.newPage())
}

// Submit handles the form post and re-renders the page with the outcome.
func (h *Handler) Submit(c echo.Context) error {
	page := h.newPage()

	var sub flow.Submission
	if err := c.Bind(&sub); err != nil {
		page.Statuses = []status{{Level: "error", Message: "Invalid form submission."}}
		return c.Render(http.StatusBadRequest, "index.html", page)
	}
	page.Text = sub.Text
	if sub.Source != "" {
		page.Source = sub.Source
	}
	if sub.Target != "" {
		page.Target = sub.Target
	}

	if page.Setup != "" {
		logger.Warn("submit rejected, credentials missing", "module", "web")
		return c.Render(http.StatusServiceUnavailable, "index.html", page)
	}

	out := h.flow.Submit(c.Request().Context(), sub)

	switch out.State {
	case flow.StatePrompt:
		page.Statuses = append(page.Statuses, status{Level: "info", Message: out.Message})
	case flow.StateResult:
		if msg := out.DetectedMessage(); msg != "" {
			page.Statuses = append(page.Statuses, status{Level: "info", Message: msg})
		}
		page.Statuses = append(page.Statuses, status{Level: "success", Message: out.Message})
		page.ResultLabel = out.ResultLabel()
		page.Result = out.Text
	default:
		if msg := out.DetectedMessage(); msg != "" {
			page.Statuses = append(page.Statuses, status{Level: "info", Message: msg})
		}
		page.Statuses = append(page.Statuses, status{Level: "error", Message: out.Message})
	}

	return c.Render(http.StatusOK, "index.html", page)
}

// Translate is the JSON form of Submit.
func (h *Handler) Translate(c echo.Context) error {
	if err := h.creds.Check(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: flow.MsgSetup})
	}

	var sub flow.Submission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	out := h.flow.Submit(c.Request().Context(), sub)

	switch out.State {
	case flow.StateResult:
		return c.JSON(http.StatusOK, translateResponse{
			Text:        out.Text,
			Source:      out.Request.SourceLang,
			Target:      out.Target.Code,
			Detected:    out.Detected,
			Message:     out.Message,
			ResultLabel: out.ResultLabel(),
		})
	case flow.StatePrompt:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: out.Message})
	default:
		if out.Message == flow.MsgUnsupportedLanguage {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: out.Message})
		}
		return c.JSON(http.StatusBadGateway, errorResponse{Error: out.Message})
	}
}

// Languages proxies the service's list of supported languages.
func (h *Handler) Languages(c echo.Context) error {
	langs, err := h.service.Languages(c.Request().Context())
	if err != nil {
		logger.Error("list languages failed", "module", "web", "error", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "could not list languages"})
	}
	return c.JSON(http.StatusOK, languagesResponse{Translation: langs})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": config.AppVersion,
	})
}
