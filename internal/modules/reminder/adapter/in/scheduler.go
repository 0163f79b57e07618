package in

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	reminderdto "studyhub/internal/modules/reminder/dto"
	reminderin "studyhub/internal/modules/reminder/port/in"
)

// Scheduler fires the digest on a cron schedule until its context ends.
type Scheduler struct {
	usecase reminderin.Usecase
	loc     *time.Location
	logger  *zap.Logger
}

func NewScheduler(usecase reminderin.Usecase, loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{usecase: usecase, loc: loc, logger: logger}
}

// Run blocks until ctx is done. notify receives each digest.
func (s *Scheduler) Run(ctx context.Context, input reminderdto.ScheduleInput, notify func(reminderdto.DigestOutput)) error {
	plan, err := s.usecase.Schedule(ctx, input)
	if err != nil {
		return err
	}
	c := cron.New(cron.WithLocation(s.loc), cron.WithSeconds())
	if _, err := c.AddFunc(plan.Spec, func() { s.fire(ctx, notify) }); err != nil {
		return fmt.Errorf("schedule reminder %q: %w", plan.Spec, err)
	}
	s.logger.Info("reminder scheduled", zap.String("spec", plan.Spec), zap.String("tz", s.loc.String()))
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("reminder stopped")
	return nil
}

func (s *Scheduler) fire(ctx context.Context, notify func(reminderdto.DigestOutput)) {
	digest, err := s.usecase.Digest(ctx)
	if err != nil {
		s.logger.Error("build digest", zap.Error(err))
		return
	}
	s.logger.Info("reminder fired",
		zap.Int("days_until_exam", digest.DaysUntilExam),
		zap.Int("pending_goals", len(digest.PendingGoals)),
		zap.Bool("logged_today", digest.LoggedToday),
	)
	notify(digest)
}
