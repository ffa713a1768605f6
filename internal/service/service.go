package service

import (
	"time"

	"github.com/hance08/caja/internal/config"
	"github.com/hance08/caja/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Box         *BoxService
	Transaction *TransactionService
	Template    *TemplateService
	Goal        *GoalService
	Summary     *SummaryService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) *Service {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	base := base{repo: repo, logger: logger, now: time.Now}

	return &Service{
		Box:         &BoxService{base: base},
		Transaction: &TransactionService{base: base},
		Template:    &TemplateService{base: base},
		Goal:        &GoalService{base: base},
		Summary:     &SummaryService{base: base},
		Config:      cfg,
	}
}

// SetClock replaces the wall clock used for defaults such as "today".
func (s *Service) SetClock(now func() time.Time) {
	s.Box.now = now
	s.Transaction.now = now
	s.Template.now = now
	s.Goal.now = now
	s.Summary.now = now
}

type base struct {
	repo   store.Repository
	logger *pterm.Logger
	now    func() time.Time
}
