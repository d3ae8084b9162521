// Package http serves rendered team bubbles and their aggregates over HTTP.
package http

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

type httpServer struct {
	listenPort int
	core       teambubbles.Service
	app        *fiber.App
	listener   net.Listener
	wg         sync.WaitGroup
}

type Option func(s *httpServer)

// WithGatherer exposes the given registry on /metrics instead of the default one.
func WithGatherer(gatherer prometheus.Gatherer) Option {
	return func(s *httpServer) {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

func New(core teambubbles.Service, listenPort int, options ...Option) teambubbles.Server {
	result := &httpServer{
		core:       core,
		listenPort: listenPort,
	}
	result.app = NewApp(core)

	for _, option := range options {
		option(result)
	}

	return result
}

// NewApp builds the fiber application without binding a port.
func NewApp(core teambubbles.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestLogger())

	h := &handler{core: core}
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/teams", h.getTeams)
	app.Get("/bubbles", h.getBubbles)

	return app
}

func (s *httpServer) Start() error {
	var err error

	s.listener, err = net.Listen("tcp", fmt.Sprintf(":%d", s.listenPort))
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if err := s.app.Listener(s.listener); err != nil {
			logrus.WithError(err).Info("http server stopped")
		}
	}()

	return nil
}

func (s *httpServer) Close() error {
	err := s.app.ShutdownWithTimeout(5 * time.Second)
	s.wg.Wait()
	return err
}

// RequestLogger logs method, path, status and duration of every request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logrus.WithFields(logrus.Fields{
			"method":      c.Method(),
			"path":        c.OriginalURL(),
			"status":      c.Response().StatusCode(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		}).Info("http")

		return err
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else if st, ok := status.FromError(err); ok {
		code = httpStatus(st.Code())
		message = st.Message()
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return fiber.StatusBadRequest

	case codes.NotFound:
		return fiber.StatusNotFound

	case codes.Unavailable:
		return fiber.StatusServiceUnavailable

	case codes.DeadlineExceeded:
		return fiber.StatusGatewayTimeout

	default:
		return fiber.StatusInternalServerError
	}
}
