package core

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cafebazaar/teambubbles/internal/metrics"
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

type coreService struct {
	source        teambubbles.TaskSource
	aggregator    teambubbles.Aggregator
	layout        teambubbles.Layout
	renderers     teambubbles.RendererFactory
	metrics       *metrics.Metrics
	defaultFormat string
	defaultLocale string
}

type Option func(s *coreService)

func New(source teambubbles.TaskSource,
	aggregator teambubbles.Aggregator,
	layout teambubbles.Layout,
	renderers teambubbles.RendererFactory,
	options ...Option) teambubbles.Service {

	result := &coreService{
		source:        source,
		aggregator:    aggregator,
		layout:        layout,
		renderers:     renderers,
		defaultFormat: "html",
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func WithDefaultFormat(format string) Option {
	return func(s *coreService) {
		s.defaultFormat = format
	}
}

func WithDefaultLocale(locale string) Option {
	return func(s *coreService) {
		s.defaultLocale = locale
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *coreService) {
		s.metrics = m
	}
}

func (s *coreService) Aggregates(ctx context.Context,
	request *teambubbles.AggregatesRequest) (*teambubbles.AggregatesResponse, error) {

	aggregates, err := s.aggregate(ctx)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	return &teambubbles.AggregatesResponse{Aggregates: aggregates}, nil
}

func (s *coreService) Render(ctx context.Context,
	request *teambubbles.RenderRequest) (*teambubbles.RenderResponse, error) {

	started := time.Now()
	format := request.Format
	if format == "" {
		format = s.defaultFormat
	}

	label := strings.ToLower(format)
	renderer, err := s.renderers(format)
	if err != nil {
		label = metrics.UnknownFormat
	}

	var response *teambubbles.RenderResponse
	if err == nil {
		response, err = s.render(ctx, renderer, format, request.Locale)
	}
	if s.metrics != nil {
		s.metrics.ObserveRender(label, started, err)
	}
	if err != nil {
		logrus.WithError(err).WithField("format", format).Warn("failed to render chart")
		return nil, s.convertErrorToGRPC(err)
	}

	return response, nil
}

func (s *coreService) Close() error {
	return s.source.Close()
}

func (s *coreService) render(ctx context.Context, renderer teambubbles.Renderer,
	format, locale string) (*teambubbles.RenderResponse, error) {

	aggregates, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if locale == "" {
		locale = s.defaultLocale
	}

	chart, err := s.layout.Layout(aggregates, locale)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, chart); err != nil {
		return nil, errors.Wrapf(err, "failed to render %v", format)
	}

	return &teambubbles.RenderResponse{
		ContentType: renderer.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

func (s *coreService) aggregate(ctx context.Context) ([]teambubbles.TeamAggregate, error) {
	tasks, err := s.source.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	aggregates := s.aggregator.Aggregate(tasks)
	if s.metrics != nil {
		s.metrics.ObserveAggregation(len(tasks), len(aggregates))
	}

	logrus.WithFields(logrus.Fields{
		"tasks": len(tasks),
		"teams": len(aggregates),
	}).Debug("aggregated tasks")

	return aggregates, nil
}

func (s *coreService) convertErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch errors.Cause(err) {
	case teambubbles.ErrNotFound:
		return status.Error(codes.NotFound, err.Error())

	case teambubbles.ErrUnknownFormat, teambubbles.ErrUnknownLocale:
		return status.Error(codes.InvalidArgument, err.Error())

	case teambubbles.ErrInvalidTask:
		return status.Error(codes.DataLoss, err.Error())

	case teambubbles.ErrClosed:
		return status.Error(codes.Unavailable, err.Error())

	case context.Canceled:
		return status.Error(codes.Canceled, context.Canceled.Error())

	case context.DeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, context.DeadlineExceeded.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
