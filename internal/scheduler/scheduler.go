// Package scheduler runs per-user reminder notification loops. Each
// connected user gets one Scheduler that polls wall-clock time, matches it
// against the user's active reminders and pushes at most one notification
// per reminder per calendar day.
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
)

// Clock abstracts time.Now so tests can drive ticks deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Notifier delivers a notification to the user's connected clients.
type Notifier interface {
	Notify(userID uuid.UUID, n domain.Notification) error
}

// dedupeKey identifies one (reminder, calendar day) notification slot.
type dedupeKey struct {
	reminderID uuid.UUID
	date       string // "2006-01-02"
}

type Scheduler struct {
	userID       uuid.UUID
	notifier     Notifier
	clock        Clock
	pollInterval time.Duration

	mu         sync.Mutex
	reminders  map[uuid.UUID]*domain.Reminder // active reminders only
	permission domain.PermissionState
	shownToday map[dedupeKey]struct{}
	lastDate   string

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func New(userID uuid.UUID, notifier Notifier, clock Clock, pollInterval time.Duration) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		userID:       userID,
		notifier:     notifier,
		clock:        clock,
		pollInterval: pollInterval,
		reminders:    make(map[uuid.UUID]*domain.Reminder),
		permission:   domain.PermissionDefault,
		shownToday:   make(map[dedupeKey]struct{}),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start launches the polling loop. Call Stop to tear it down.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop cancels the loop and blocks until it has exited, so no tick can fire
// against stale state after Stop returns. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Scheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick(s.clock.Now())
		}
	}
}

// SetReminders atomically replaces the active set. Inactive reminders are
// dropped here, so a toggled-off or deleted reminder stops matching on the
// very next tick. Dedupe entries for removed reminders are left in place;
// they expire with the day and a re-added reminder must not fire twice.
func (s *Scheduler) SetReminders(reminders []*domain.Reminder) {
	next := make(map[uuid.UUID]*domain.Reminder, len(reminders))
	for _, r := range reminders {
		if r.IsActive {
			next[r.ID] = r
		}
	}

	s.mu.Lock()
	s.reminders = next
	s.mu.Unlock()
}

// SetPermission records the client-reported notification permission. A
// grant arriving after a reminder's time has passed does not trigger a
// catch-up: matching is exact-minute only.
func (s *Scheduler) SetPermission(p domain.PermissionState) {
	s.mu.Lock()
	s.permission = p
	s.mu.Unlock()
}

func (s *Scheduler) Permission() domain.PermissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// tick performs one poll step. The midnight reset is applied before
// matching, so a reminder timed at 00:00 can fire on the new day.
func (s *Scheduler) tick(now time.Time) {
	date := now.Format("2006-01-02")
	hhmm := now.Format("15:04")

	s.mu.Lock()

	if date != s.lastDate {
		s.shownToday = make(map[dedupeKey]struct{})
		s.lastDate = date
	}

	type pending struct {
		key dedupeKey
		n   domain.Notification
	}
	var toSend []pending

	if s.permission == domain.PermissionGranted {
		for _, r := range s.reminders {
			if r.Time != hhmm {
				continue
			}
			key := dedupeKey{reminderID: r.ID, date: date}
			if _, shown := s.shownToday[key]; shown {
				continue
			}
			// Claim the day's slot before delivery: the guarantee is
			// at-most-once, a failed delivery is not retried.
			s.shownToday[key] = struct{}{}
			toSend = append(toSend, pending{
				key: key,
				n: domain.Notification{
					ReminderID: r.ID,
					Title:      r.Title,
					Type:       r.Type,
					TypeLabel:  r.Type.Label(),
					Time:       r.Time,
				},
			})
		}
	}

	s.mu.Unlock()

	for _, p := range toSend {
		if err := s.notifier.Notify(s.userID, p.n); err != nil {
			// A single delivery failure must never halt the loop.
			log.Printf("ERROR [scheduler.tick] notify user=%s reminder=%s: %v",
				s.userID, p.n.ReminderID, err)
		}
	}
}
