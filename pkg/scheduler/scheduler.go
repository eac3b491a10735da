// Package scheduler runs the daily expiry notification pass: once the
// wall clock passes the configured trigger time it sweeps every user's
// pantry and mails a digest of items expiring within the soon window.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"
	"smart-pantry-backend/pkg/pantry"
)

type (
	// Sweeper is the destructive pantry pass; expired items are purged as a
	// side effect, so only Soon-bucket items remain to report.
	Sweeper interface {
		SweepAndPurge(ctx context.Context, username string, today time.Time) (domain.SweepResult, error)
	}

	Notifier interface {
		NotifyExpiring(ctx context.Context, email string, username string, items []domain.ExpiringItem) error
	}

	UserSource interface {
		FindAll(ctx context.Context) ([]*entities.User, error)
		FindByUsername(ctx context.Context, username string) (*entities.User, error)
	}

	Clock interface {
		Now() time.Time
	}

	systemClock struct{}

	Config struct {
		// TriggerAt is the daily wall-clock trigger in "15:04" format.
		TriggerAt string
		// PollInterval is how often the trigger condition is checked.
		PollInterval time.Duration
		// SweepTimeout bounds one user's sweep plus notification.
		SweepTimeout time.Duration
	}

	Scheduler struct {
		cfg      Config
		clock    Clock
		users    UserSource
		sweeper  Sweeper
		notifier Notifier

		triggerHour   int
		triggerMinute int

		// lastFired is the calendar day of the last trigger. In-memory only:
		// a restart may notify the same user twice on one day. Known gap,
		// kept to match the behavior this replaces.
		lastFired time.Time

		stop chan struct{}
		done chan struct{}
	}
)

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

func New(cfg Config, clock Clock, users UserSource, sweeper Sweeper, notifier Notifier) (*Scheduler, error) {
	trigger, err := time.Parse("15:04", cfg.TriggerAt)
	if err != nil {
		return nil, fmt.Errorf("invalid trigger time %q: %w", cfg.TriggerAt, err)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	if cfg.SweepTimeout <= 0 {
		cfg.SweepTimeout = time.Minute
	}

	return &Scheduler{
		cfg:           cfg,
		clock:         clock,
		users:         users,
		sweeper:       sweeper,
		notifier:      notifier,
		triggerHour:   trigger.Hour(),
		triggerMinute: trigger.Minute(),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}, nil
}

// Start launches the background polling loop.
func (s *Scheduler) Start() {
	go s.run()
	slog.Info("expiry notification scheduler started",
		"trigger_at", s.cfg.TriggerAt, "poll_interval", s.cfg.PollInterval)
}

// Stop shuts the scheduler down. An in-flight trigger finishes its current
// user before the loop exits; no new users are started.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Scheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick fires the notification pass once per calendar day, the first time the
// wall clock is at or past the configured trigger.
func (s *Scheduler) tick() {
	now := s.clock.Now()

	if sameDay(now, s.lastFired) {
		return
	}

	trigger := time.Date(now.Year(), now.Month(), now.Day(),
		s.triggerHour, s.triggerMinute, 0, 0, now.Location())
	if now.Before(trigger) {
		return
	}

	s.lastFired = now
	s.fire(now)
}

func (s *Scheduler) fire(now time.Time) {
	slog.Info("checking for expiring items")

	ctx := context.Background()
	users, err := s.users.FindAll(ctx)
	if err != nil {
		slog.Error("failed to list users for notification pass", "error", err)
		return
	}

	for _, u := range users {
		select {
		case <-s.stop:
			slog.Info("scheduler stopping, abandoning remaining users")
			return
		default:
		}

		if u.Email == "" {
			continue
		}

		count, err := s.notifyUser(ctx, u, now)
		if err != nil {
			// One user's failure never aborts the pass.
			slog.Warn("expiry notification failed", "user", u.Username, "error", err)
			continue
		}
		if count > 0 {
			slog.Info("expiry notification sent", "user", u.Username, "items", count)
		}
	}
}

// TriggerFor runs one immediate sweep-and-notify pass for a single user,
// outside the daily schedule.
func (s *Scheduler) TriggerFor(ctx context.Context, username string) (int, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if u.Email == "" {
		return 0, errors.New("user has no email address")
	}
	return s.notifyUser(ctx, u, s.clock.Now())
}

func (s *Scheduler) notifyUser(ctx context.Context, u *entities.User, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SweepTimeout)
	defer cancel()

	result, err := s.sweeper.SweepAndPurge(ctx, u.Username, now)
	if err != nil {
		return 0, err
	}

	expiring := collectExpiring(result)
	if len(expiring) == 0 {
		return 0, nil
	}

	if err := s.notifier.NotifyExpiring(ctx, u.Email, u.Username, expiring); err != nil {
		return 0, err
	}
	return len(expiring), nil
}

// collectExpiring picks the Soon-bucket items out of a sweep result, ordered
// by ascending days left, ties broken by name.
func collectExpiring(result domain.SweepResult) []domain.ExpiringItem {
	var expiring []domain.ExpiringItem
	for _, item := range result.Active {
		if item.Bucket != pantry.BucketSoon {
			continue
		}
		expiring = append(expiring, domain.ExpiringItem{
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			DaysLeft: item.DaysLeft,
		})
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		if expiring[i].DaysLeft != expiring[j].DaysLeft {
			return expiring[i].DaysLeft < expiring[j].DaysLeft
		}
		return expiring[i].Name < expiring[j].Name
	})

	return expiring
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
