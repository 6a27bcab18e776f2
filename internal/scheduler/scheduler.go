package scheduler

import (
	"github.com/roylee0704/gron"
	"pitwall/internal/providers"
	"pitwall/internal/scheduler/interfaces"
	"pitwall/internal/services"
	"pitwall/internal/structures"
	"sync"
	"time"
)

type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	sessions services.SessionServiceInterface
	metrics  providers.MetricsProviderInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
	now      func() time.Time
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Session.SweepInterval), func() {
		s.Housekeep()
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Housekeep drops idle sessions and refreshes the session gauges. It returns
// the number of sessions removed.
func (s *Scheduler) Housekeep() int {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	removed := s.sessions.Sweep(s.now())
	if removed > 0 {
		s.logger.Infof(providers.TypeApp, "Swept %d idle session(s)", removed)
	}
	s.metrics.SetActiveSessions(s.sessions.ActiveSessions())
	s.metrics.SetActiveDashboards(s.sessions.ActiveDashboards())
	return removed
}

func NewScheduler(config *structures.Config, logger providers.Logger, sessions services.SessionServiceInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		sessions: sessions,
		metrics:  metrics,
		now:      time.Now,
	}
}
