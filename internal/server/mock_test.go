package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/triage-api/internal/model"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) AnalyzeBatch(ctx context.Context, complaints []model.ComplaintInput) (*model.AnalysisResponse, error) {
	args := m.Called(ctx, complaints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisResponse), args.Error(1)
}

func (m *mockAnalyzer) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
