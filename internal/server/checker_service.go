package server

import "github.com/joeblew999/plat-emailguard/pkg/checker"

// checkerService adapts checker.Engine to the service.Service interface.
type checkerService struct {
	engine  *checker.Engine
	workers int
}

func newCheckerService(engine *checker.Engine, workers int) *checkerService {
	return &checkerService{engine: engine, workers: workers}
}

func (s *checkerService) Start() {
	s.engine.Start(s.workers)
}

func (s *checkerService) Stop() {
	s.engine.Stop()
}
