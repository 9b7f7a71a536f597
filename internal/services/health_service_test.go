package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

// HealthServiceTestSuite defines the test suite for HealthService
type HealthServiceTestSuite struct {
	suite.Suite
	db     *fakePinger
	search *fakePinger
	cache  *fakePinger
}

// SetupTest runs before each test
func (s *HealthServiceTestSuite) SetupTest() {
	s.db = &fakePinger{}
	s.search = &fakePinger{}
	s.cache = &fakePinger{}
}

func (s *HealthServiceTestSuite) newService() HealthServiceInterface {
	return NewHealthService(s.db, s.search, s.cache)
}

// TestHealthServiceSuite runs the test suite
func TestHealthServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthServiceTestSuite))
}

func (s *HealthServiceTestSuite) TestCheck_AllHealthy() {
	report := s.newService().Check(context.Background())

	s.Equal(HealthStatusOK, report.Status)
	s.Equal(ServiceHealthy, report.Services["postgres"].Status)
	s.Equal(ServiceHealthy, report.Services["elasticsearch"].Status)
	s.Equal(ServiceHealthy, report.Services["redis"].Status)
	s.Equal(ServiceHealthy, report.Services["web"].Status)
}

func (s *HealthServiceTestSuite) TestCheck_OneDown() {
	s.search.err = errors.New("connection refused")

	report := s.newService().Check(context.Background())

	s.Equal(HealthStatusDegraded, report.Status)
	s.Equal(ServiceUnhealthy, report.Services["elasticsearch"].Status)
	s.Equal("connection refused", report.Services["elasticsearch"].Error)

	// Remaining probes still run and report
	s.Equal(ServiceHealthy, report.Services["postgres"].Status)
	s.Equal(ServiceHealthy, report.Services["redis"].Status)
	s.Equal(ServiceHealthy, report.Services["web"].Status)
}

func (s *HealthServiceTestSuite) TestCheck_AllDown() {
	s.db.err = errors.New("down")
	s.search.err = errors.New("down")
	s.cache.err = errors.New("down")

	report := s.newService().Check(context.Background())

	s.Equal(HealthStatusError, report.Status)
	s.Equal(ServiceHealthy, report.Services["web"].Status)
}
