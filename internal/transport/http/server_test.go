package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	transport "github.com/cafebazaar/teambubbles/internal/transport/http"
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

func TestHealthz(t *testing.T) {
	app := transport.NewApp(&teambubbles.Mock_Service{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetTeamsReturnsAggregates(t *testing.T) {
	core := &teambubbles.Mock_Service{}
	core.On("Aggregates", mock.Anything, mock.Anything).Return(&teambubbles.AggregatesResponse{
		Aggregates: []teambubbles.TeamAggregate{
			{Team: "Alpha", TotalVotes: 3, TaskCount: 2},
			{Team: "Beta", TotalVotes: 2, TaskCount: 1},
		},
	}, nil)
	app := transport.NewApp(core)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teams", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []teambubbles.TeamAggregate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Alpha", body[0].Team)
	require.Equal(t, 3, body[0].TotalVotes)
	require.Len(t, body, 2)
}

func TestGetBubblesPassesQueryAndContentType(t *testing.T) {
	core := &teambubbles.Mock_Service{}
	core.On("Render", mock.Anything, mock.MatchedBy(func(request *teambubbles.RenderRequest) bool {
		return request.Format == "html" && request.Locale == "fi"
	})).Return(&teambubbles.RenderResponse{
		ContentType: "text/html; charset=utf-8",
		Data:        []byte(`<div class="team-bubbles"></div>`),
	}, nil)
	app := transport.NewApp(core)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bubbles?format=html&locale=fi", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, `<div class="team-bubbles"></div>`, string(body))
	core.AssertExpectations(t)
}

func TestGetBubblesMapsStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "unknown format"), expected: http.StatusBadRequest},
		{name: "not found", err: status.Error(codes.NotFound, "not found"), expected: http.StatusNotFound},
		{name: "unavailable", err: status.Error(codes.Unavailable, "closed"), expected: http.StatusServiceUnavailable},
		{name: "internal", err: status.Error(codes.Internal, "boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := &teambubbles.Mock_Service{}
			core.On("Render", mock.Anything, mock.Anything).Return(nil, tt.err)
			app := transport.NewApp(core)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bubbles?format=nope", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.expected, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, status.Convert(tt.err).Message(), body["error"])
		})
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	app := transport.NewApp(&teambubbles.Mock_Service{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServerExposesMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "scrape_check_total", Help: "scrape check"}))

	port := freePort(t)
	server := transport.New(&teambubbles.Mock_Service{}, port, transport.WithGatherer(registry))
	require.NoError(t, server.Start())
	defer func() {
		require.NoError(t, server.Close())
	}()

	resp, err := http.Get(serverURL(port, "/metrics"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "scrape_check_total")
}
