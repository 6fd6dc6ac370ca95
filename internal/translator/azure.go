package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valpere/aztran/internal/logger"
)

const (
	apiVersion = "3.0"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 4 << 20
)

// AzureService talks to the Azure AI Translator text API v3.0.
// Every method issues at most one HTTP call and never retries.
type AzureService struct {
	cfg    *ServiceConfig
	client *http.Client
}

func NewAzureService(cfg *ServiceConfig) *AzureService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &AzureService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type textItem struct {
	Text string `json:"Text"`
}

type translateItem struct {
	Translations []struct {
		Text *string `json:"text"`
		To   string  `json:"to"`
	} `json:"translations"`
}

type detectItem struct {
	Language *string `json:"language"`
	Score    float64 `json:"score"`
}

type languagesResponse struct {
	Translation map[string]LanguageInfo `json:"translation"`
}

type remoteErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Translate returns the translation of req.Text into req.TargetLang. A source
// of "" or "auto" is omitted from the request so the service detects it.
func (s *AzureService) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	const op = "translate"

	logger.Debug("translate started",
		"module", "translator",
		"text", logger.Snippet(req.Text, 50),
		"source", req.SourceLang,
		"target", req.TargetLang,
	)

	if err := s.checkCredentials(op); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("api-version", apiVersion)
	params.Set("to", req.TargetLang)
	if req.SourceLang != "" && req.SourceLang != AutoDetect {
		params.Set("from", req.SourceLang)
	}

	var items []translateItem
	if err := s.call(ctx, op, http.MethodPost, "/translate", params, []textItem{{Text: req.Text}}, &items); err != nil {
		return "", err
	}

	if len(items) == 0 || len(items[0].Translations) == 0 || items[0].Translations[0].Text == nil || *items[0].Translations[0].Text == "" {
		return "", s.parseFailure(op, "response has no translations[0].text")
	}

	text := *items[0].Translations[0].Text
	logger.Info("translate succeeded", "module", "translator", "text", logger.Snippet(text, 50))
	return text, nil
}

// Detect returns the language code the service assigns to text.
func (s *AzureService) Detect(ctx context.Context, text string) (string, error) {
	const op = "detect"

	logger.Debug("detect started", "module", "translator", "text", logger.Snippet(text, 50))

	if err := s.checkCredentials(op); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("api-version", apiVersion)

	var items []detectItem
	if err := s.call(ctx, op, http.MethodPost, "/detect", params, []textItem{{Text: text}}, &items); err != nil {
		return "", err
	}

	if len(items) == 0 || items[0].Language == nil || *items[0].Language == "" {
		return "", s.parseFailure(op, "response has no language")
	}

	lang := *items[0].Language
	logger.Info("detect succeeded", "module", "translator", "language", lang, "score", items[0].Score)
	return lang, nil
}

// Languages lists the translation scope of the service. The endpoint is
// public, so no credentials are required or sent.
func (s *AzureService) Languages(ctx context.Context) (map[string]LanguageInfo, error) {
	const op = "languages"

	params := url.Values{}
	params.Set("api-version", apiVersion)
	params.Set("scope", "translation")

	var resp languagesResponse
	if err := s.call(ctx, op, http.MethodGet, "/languages", params, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Translation == nil {
		return nil, s.parseFailure(op, "response has no translation scope")
	}

	logger.Info("languages listed", "module", "translator", "count", len(resp.Translation))
	return resp.Translation, nil
}

func (s *AzureService) checkCredentials(op string) error {
	err := s.cfg.Check()
	if err == nil {
		return nil
	}
	te := err.(*Error)
	te.Op = op
	logger.Error("missing Azure credentials", "module", "translator", "op", op, "detail", te.Detail)
	return te
}

func (s *AzureService) parseFailure(op, detail string) error {
	logger.Error("unexpected response shape", "module", "translator", "op", op, "detail", detail)
	return &Error{Kind: KindParse, Op: op, Detail: detail}
}

// call performs one request. A nil body means a GET without auth headers;
// otherwise body is sent as JSON along with the subscription headers.
func (s *AzureService) call(ctx context.Context, op, method, path string, params url.Values, body any, out any) error {
	endpoint := strings.TrimRight(s.cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	apiURL := endpoint + path + "?" + params.Encode()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Op: op, Detail: "failed to marshal request", Err: err}
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Detail: "failed to create request", Err: err}
	}

	traceID := ""
	if body != nil {
		traceID = uuid.NewString()
		httpReq.Header.Set("Ocp-Apim-Subscription-Key", s.cfg.SubscriptionKey)
		httpReq.Header.Set("Ocp-Apim-Subscription-Region", s.cfg.Region)
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("X-ClientTraceId", traceID)
	}

	logger.Debug("sending request",
		"module", "translator",
		"op", op,
		"method", method,
		"url", apiURL,
		"trace_id", traceID,
	)

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		logger.Error("request failed",
			"module", "translator",
			"op", op,
			"url", apiURL,
			"error", err,
		)
		return &Error{Kind: KindTransport, Op: op, Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Error("failed to read response", "module", "translator", "op", op, "error", err)
		return &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Detail: "failed to read response", Err: err}
	}

	logger.Info("response received",
		"module", "translator",
		"op", op,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"trace_id", traceID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := remoteMessage(data)
		logger.Error("remote error",
			"module", "translator",
			"op", op,
			"status_code", resp.StatusCode,
			"body", logger.Snippet(string(data), 500),
		)
		return &Error{Kind: KindRemote, Op: op, Status: resp.StatusCode, Detail: detail}
	}

	logger.Debug("response body", "module", "translator", "op", op, "body", logger.Snippet(string(data), 200))

	if err := json.Unmarshal(data, out); err != nil {
		logger.Error("failed to decode response", "module", "translator", "op", op, "error", err)
		return &Error{Kind: KindParse, Op: op, Status: resp.StatusCode, Detail: "failed to decode response", Err: err}
	}
	return nil
}

// remoteMessage extracts the service's error message, falling back to the
// raw body.
func remoteMessage(body []byte) string {
	var eb remoteErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		return fmt.Sprintf("%s (code %d)", eb.Error.Message, eb.Error.Code)
	}
	return strings.TrimSpace(logger.Snippet(string(body), 200))
}
