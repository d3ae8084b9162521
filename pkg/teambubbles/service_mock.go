package teambubbles

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_Service struct {
	mock.Mock
}

func (m *Mock_Service) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Service) Aggregates(ctx context.Context, request *AggregatesRequest) (*AggregatesResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *AggregatesResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *AggregatesRequest) *AggregatesResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*AggregatesResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *AggregatesRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) Render(ctx context.Context, request *RenderRequest) (*RenderResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *RenderResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *RenderRequest) *RenderResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*RenderResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *RenderRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
