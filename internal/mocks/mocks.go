package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jonmartinstorm/pakkesnusern/internal/config"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
	"github.com/jonmartinstorm/pakkesnusern/internal/runner"
)

type MockDeps struct {
	mock.Mock
}

func (m *MockDeps) FindCandidates(root string) ([]models.CandidateFile, error) {
	args := m.Called(root)
	var cands []models.CandidateFile
	if v := args.Get(0); v != nil {
		cands = v.([]models.CandidateFile)
	}
	return cands, args.Error(1)
}

func (m *MockDeps) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	var data []byte
	if v := args.Get(0); v != nil {
		data = v.([]byte)
	}
	return data, args.Error(1)
}

func (m *MockDeps) Render(occs []models.Occurrence) {
	m.Called(occs)
}

func (m *MockDeps) NewWriter(ctx context.Context, cfg config.Config) (runner.OccurrenceWriter, error) {
	args := m.Called(ctx, cfg)
	var w runner.OccurrenceWriter
	if v := args.Get(0); v != nil {
		w = v.(runner.OccurrenceWriter)
	}
	return w, args.Error(1)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteOccurrences(ctx context.Context, occs []models.Occurrence, snapshot time.Time) error {
	args := m.Called(ctx, occs, snapshot)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}
