package mocks

import (
	"context"

	"placefinder/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSearchHistoryRepository struct {
	mock.Mock
}

func (m *MockSearchHistoryRepository) Create(ctx context.Context, rec *model.SearchRecord) (*model.SearchRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchRecord), args.Error(1)
}

func (m *MockSearchHistoryRepository) Recent(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchRecord), args.Error(1)
}
