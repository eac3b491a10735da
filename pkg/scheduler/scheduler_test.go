package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"
	"smart-pantry-backend/pkg/pantry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeUsers struct {
	users []*entities.User
	err   error
}

func (f *fakeUsers) FindAll(context.Context) ([]*entities.User, error) {
	return f.users, f.err
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeSweeper struct {
	results map[string]domain.SweepResult
	errs    map[string]error
	swept   []string
}

func (f *fakeSweeper) SweepAndPurge(_ context.Context, username string, _ time.Time) (domain.SweepResult, error) {
	f.swept = append(f.swept, username)
	if err := f.errs[username]; err != nil {
		return domain.SweepResult{}, err
	}
	return f.results[username], nil
}

type notifyCall struct {
	email string
	items []domain.ExpiringItem
}

type fakeNotifier struct {
	calls []notifyCall
	errs  map[string]error
}

func (f *fakeNotifier) NotifyExpiring(_ context.Context, email string, _ string, items []domain.ExpiringItem) error {
	if err := f.errs[email]; err != nil {
		return err
	}
	f.calls = append(f.calls, notifyCall{email: email, items: items})
	return nil
}

func testUser(username, email string) *entities.User {
	return &entities.User{ID: uuid.New(), Username: username, Email: email}
}

func soonResult(items ...domain.PantryItemView) domain.SweepResult {
	return domain.SweepResult{Active: items}
}

func soonItem(name string, daysLeft int) domain.PantryItemView {
	return domain.PantryItemView{Name: name, DaysLeft: daysLeft, Bucket: pantry.BucketSoon}
}

func newTestScheduler(t *testing.T, clock Clock, users UserSource, sweeper Sweeper, notifier Notifier) *Scheduler {
	t.Helper()
	s, err := New(Config{
		TriggerAt:    "09:00",
		PollInterval: time.Minute,
		SweepTimeout: time.Minute,
	}, clock, users, sweeper, notifier)
	require.NoError(t, err)
	return s
}

func TestNewRejectsBadTriggerTime(t *testing.T) {
	_, err := New(Config{TriggerAt: "9am"}, SystemClock(), &fakeUsers{}, &fakeSweeper{}, &fakeNotifier{})
	assert.Error(t, err)

	_, err = New(Config{TriggerAt: "25:00"}, SystemClock(), &fakeUsers{}, &fakeSweeper{}, &fakeNotifier{})
	assert.Error(t, err)
}

func TestTickFiresOncePerDay(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{results: map[string]domain.SweepResult{
		"alice": soonResult(soonItem("Milk", 2)),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
	}}, sweeper, notifier)

	// Before the trigger time nothing happens.
	s.tick()
	assert.Empty(t, notifier.calls)

	// At the trigger time the pass runs.
	clock.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.tick()
	require.Len(t, notifier.calls, 1)

	// Later ticks on the same day do not fire again.
	clock.now = time.Date(2026, 3, 10, 9, 1, 0, 0, time.UTC)
	s.tick()
	clock.now = time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	s.tick()
	assert.Len(t, notifier.calls, 1)

	// The next day it fires again.
	clock.now = time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	s.tick()
	assert.Len(t, notifier.calls, 2)
}

func TestTickFiresLateWhenTriggerWasMissed(t *testing.T) {
	// A pass started after the trigger time (first tick of the day at 14:00)
	// still fires; the schedule is "at or after", not "exactly at".
	clock := &fakeClock{now: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{results: map[string]domain.SweepResult{
		"alice": soonResult(soonItem("Milk", 1)),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
	}}, sweeper, notifier)

	s.tick()
	assert.Len(t, notifier.calls, 1)
}

func TestFireSkipsUsersWithoutEmail(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{results: map[string]domain.SweepResult{
		"alice": soonResult(soonItem("Milk", 2)),
		"ghost": soonResult(soonItem("Bread", 1)),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
		testUser("ghost", ""),
	}}, sweeper, notifier)

	s.tick()

	// The mail-less user is not even swept.
	assert.Equal(t, []string{"alice"}, sweeper.swept)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "alice@example.com", notifier.calls[0].email)
}

func TestFireIsolatesPerUserFailures(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{
		results: map[string]domain.SweepResult{
			"bob": soonResult(soonItem("Yogurt", 0)),
		},
		errs: map[string]error{"alice": errors.New("db timeout")},
	}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
		testUser("bob", "bob@example.com"),
	}}, sweeper, notifier)

	s.tick()

	// Alice's sweep failed but bob still got his digest.
	assert.Equal(t, []string{"alice", "bob"}, sweeper.swept)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "bob@example.com", notifier.calls[0].email)
}

func TestNotifySkippedWhenNothingExpiringSoon(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{results: map[string]domain.SweepResult{
		"alice": soonResult(domain.PantryItemView{Name: "Rice", DaysLeft: 30, Bucket: pantry.BucketSafe}),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
	}}, sweeper, notifier)

	s.tick()

	assert.Equal(t, []string{"alice"}, sweeper.swept)
	assert.Empty(t, notifier.calls)
}

func TestDigestOrderedByUrgencyThenName(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{results: map[string]domain.SweepResult{
		"alice": soonResult(
			soonItem("Milk", 2),
			soonItem("Yogurt", 0),
			soonItem("Cheese", 2),
			domain.PantryItemView{Name: "Rice", DaysLeft: 30, Bucket: pantry.BucketSafe},
		),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
	}}, sweeper, notifier)

	s.tick()

	require.Len(t, notifier.calls, 1)
	items := notifier.calls[0].items
	require.Len(t, items, 3)
	assert.Equal(t, "Yogurt", items[0].Name)
	assert.Equal(t, "Cheese", items[1].Name)
	assert.Equal(t, "Milk", items[2].Name)
}

func TestTriggerFor(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)}
	sweeper := &fakeSweeper{results: map[string]domain.SweepResult{
		"alice": soonResult(soonItem("Milk", 2), soonItem("Eggs", 3)),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(t, clock, &fakeUsers{users: []*entities.User{
		testUser("alice", "alice@example.com"),
		testUser("ghost", ""),
	}}, sweeper, notifier)

	count, err := s.TriggerFor(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, notifier.calls, 1)

	_, err = s.TriggerFor(context.Background(), "ghost")
	assert.Error(t, err)

	_, err = s.TriggerFor(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStartStop(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}
	s, err := New(Config{
		TriggerAt:    "09:00",
		PollInterval: 10 * time.Millisecond,
	}, clock, &fakeUsers{}, &fakeSweeper{}, &fakeNotifier{})
	require.NoError(t, err)

	s.Start()
	time.Sleep(30 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
