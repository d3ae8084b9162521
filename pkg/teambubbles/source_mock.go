package teambubbles

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_TaskSource struct {
	mock.Mock
}

func (m *Mock_TaskSource) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_TaskSource) Tasks(ctx context.Context) ([]Task, error) {
	ret := m.Called(ctx)

	var r0 []Task
	if rf, ok := ret.Get(0).(func(ctx context.Context) []Task); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Task)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
