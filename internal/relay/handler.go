package relay

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"github.com/linkveil/linkveil/internal/config"
	"github.com/linkveil/linkveil/internal/logging"
	"github.com/linkveil/linkveil/internal/rewrite"
	"github.com/linkveil/linkveil/internal/server"
)

// Client-facing bodies for the fixed error taxonomy. All client-input
// failures are 400s; upstream transport failures are 502s.
const (
	msgMissingTarget     = "Missing ?url= parameter"
	msgInvalidURL        = "Invalid URL"
	msgUnsupportedScheme = "Only http/https supported"
	msgUpstreamFailed    = "Upstream fetch failed: "
)

// Handler orchestrates one relay pass: validate the target, fetch it through
// the shared client, rewrite HTML bodies, and emit status, filtered headers,
// and body. It holds no per-request state.
type Handler struct {
	client *http.Client
	logger *logrus.Logger

	// Defaults used when the inbound request does not carry the header.
	userAgent      string
	accept         string
	acceptLanguage string
}

// NewHandler constructs a relay handler around the shared HTTP client and
// logger.
func NewHandler(client *http.Client, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		client:         client,
		logger:         logger,
		userAgent:      cfg.UserAgent,
		accept:         cfg.Accept,
		acceptLanguage: cfg.AcceptLanguage,
	}
}

// Handle serves one GET /fetch request.
func (h *Handler) Handle(c fiber.Ctx) error {
	started := time.Now()
	requestID := server.RequestID(c)

	target := c.Query("url")
	if target == "" {
		return h.reject(c, requestID, "missing_target", msgMissingTarget)
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return h.reject(c, requestID, "invalid_url", msgInvalidURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return h.reject(c, requestID, "unsupported_scheme", msgUnsupportedScheme)
	}

	resp, err := h.fetch(c, parsed)
	if err != nil {
		h.logFailure(target, requestID, started, err)
		return c.Status(fiber.StatusBadGateway).SendString(msgUpstreamFailed + err.Error())
	}
	defer resp.Body.Close()

	// The whole body is buffered before any output is written, so a failed
	// read is indistinguishable from a failed connection.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.logFailure(target, requestID, started, err)
		return c.Status(fiber.StatusBadGateway).SendString(msgUpstreamFailed + err.Error())
	}

	headers := FilterHeaders(resp.Header)

	// Relative references must resolve against the URL the redirect chain
	// actually landed on, not the one the client asked for.
	finalURL := resp.Request.URL.String()

	contentType := resp.Header.Get("Content-Type")
	rewritten := strings.Contains(contentType, "text/html")
	if rewritten {
		// The rewritten page is relayed as charset=utf-8, so the upstream
		// body must be transcoded first or non-UTF-8 origins turn to
		// mojibake.
		body = []byte(rewrite.Document(string(decodeToUTF8(body, contentType)), finalURL))
		headers.Set("Content-Type", "text/html; charset=utf-8")
	}

	for key, values := range headers {
		for _, value := range values {
			c.Set(key, value)
		}
	}
	c.Status(resp.StatusCode)

	h.logSuccess(target, finalURL, requestID, resp.StatusCode, rewritten, started)
	return c.Send(body)
}

// fetch issues the outbound GET. Only User-Agent, Accept and Accept-Language
// cross over from the inbound request; cookies and everything else stay on
// the client side.
func (h *Handler) fetch(c fiber.Ctx, target *url.URL) (*http.Response, error) {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", headerOrDefault(c, fiber.HeaderUserAgent, h.userAgent))
	req.Header.Set("Accept", headerOrDefault(c, fiber.HeaderAccept, h.accept))
	req.Header.Set("Accept-Language", headerOrDefault(c, fiber.HeaderAcceptLanguage, h.acceptLanguage))

	return h.client.Do(req)
}

// decodeToUTF8 converts an HTML body to UTF-8 using the charset declared in
// the Content-Type header, falling back to content sniffing (meta tags, BOM).
// Unknown encodings fail open to the raw bytes.
func decodeToUTF8(body []byte, contentType string) []byte {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return body
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return body
	}
	return decoded
}

func headerOrDefault(c fiber.Ctx, name, fallback string) string {
	if value := c.Get(name); value != "" {
		return value
	}
	return fallback
}

func (h *Handler) reject(c fiber.Ctx, requestID, reason, body string) error {
	h.logger.WithFields(logrus.Fields{
		"action":     "relay_reject",
		"reason":     reason,
		"request_id": requestID,
	}).Info("relay_rejected")
	return c.Status(fiber.StatusBadRequest).SendString(body)
}

func (h *Handler) logSuccess(target, finalURL, requestID string, status int, rewritten bool, started time.Time) {
	fields := logging.RelayFields(target, status, rewritten)
	fields["final_url"] = finalURL
	fields["elapsed_ms"] = time.Since(started).Milliseconds()
	if requestID != "" {
		fields["request_id"] = requestID
	}
	h.logger.WithFields(fields).Info("relay_complete")
}

func (h *Handler) logFailure(target, requestID string, started time.Time, err error) {
	fields := logging.RelayFields(target, 0, false)
	fields["elapsed_ms"] = time.Since(started).Milliseconds()
	fields["error"] = err.Error()
	if requestID != "" {
		fields["request_id"] = requestID
	}
	h.logger.WithFields(fields).Error("relay_failed")
}
