package mocks

import (
	"context"

	"placefinder/internal/model"
	"placefinder/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, q service.Query) (*service.Result, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Result), args.Error(1)
}

func (m *MockSearchService) Recent(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchRecord), args.Error(1)
}
