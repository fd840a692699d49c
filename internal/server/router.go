package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/linkveil/linkveil/internal/rewrite"
)

// RelayHandler describes the component that fetches and relays the target
// page. It allows injecting fake handlers during tests.
type RelayHandler interface {
	Handle(fiber.Ctx) error
}

// RelayHandlerFunc adapts a function to the RelayHandler interface.
type RelayHandlerFunc func(fiber.Ctx) error

// Handle makes RelayHandlerFunc satisfy RelayHandler.
func (f RelayHandlerFunc) Handle(c fiber.Ctx) error {
	return f(c)
}

// AppOptions controls how the Fiber application is assembled.
type AppOptions struct {
	Logger *logrus.Logger
	Relay  RelayHandler
}

const contextKeyRequestID = "_linkveil_request_id"

// NewApp builds the Fiber application: recover + request-ID middleware and
// the single relay entry route. Presentation routes are registered
// separately.
func NewApp(opts AppOptions) (*fiber.App, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Relay == nil {
		return nil, errors.New("relay handler is required")
	}

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
	})

	app.Use(recover.New())
	app.Use(requestIDMiddleware(opts.Logger))

	app.Get(rewrite.EntryPath, func(c fiber.Ctx) error {
		return opts.Relay.Handle(c)
	})

	return app, nil
}

// requestIDMiddleware tags every request with a UUID so relay log lines can
// be correlated with responses.
func requestIDMiddleware(logger *logrus.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		reqID := uuid.NewString()
		c.Locals(contextKeyRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		logger.WithFields(logrus.Fields{
			"action":     "request_received",
			"path":       string(c.Request().URI().Path()),
			"request_id": reqID,
		}).Debug("request received")

		return c.Next()
	}
}

// RequestID returns the request identifier stored by the middleware.
func RequestID(c fiber.Ctx) string {
	if value := c.Locals(contextKeyRequestID); value != nil {
		if reqID, ok := value.(string); ok {
			return reqID
		}
	}
	return ""
}

// ListenAddr formats the listen address for the configured port.
func ListenAddr(port int) string {
	return fmt.Sprintf(":%d", port)
}
