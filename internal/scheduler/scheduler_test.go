package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
	fail bool
}

func (n *recordingNotifier) Notify(userID uuid.UUID, notification domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("delivery failed")
	}
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func activeReminder(hhmm string) *domain.Reminder {
	return &domain.Reminder{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Title:    "Morning water",
		Time:     hhmm,
		Type:     domain.ReminderWater,
		IsActive: true,
	}
}

// at builds a wall-clock instant on the given day.
func at(day time.Time, hour, min, sec int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, sec, 0, time.Local)
}

func newTestScheduler(notifier Notifier) *Scheduler {
	return New(uuid.New(), notifier, SystemClock(), time.Hour)
}

func TestScheduler_AtMostOncePerDay(t *testing.T) {
	notifier := &recordingNotifier{}
	s := newTestScheduler(notifier)
	s.SetPermission(domain.PermissionGranted)

	reminder := activeReminder("08:00")
	s.SetReminders([]*domain.Reminder{reminder})

	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)

	// Poll every few seconds from 07:59 through 08:02.
	ticks := []time.Time{
		at(day, 7, 59, 55),
		at(day, 8, 0, 0),
		at(day, 8, 0, 5),
		at(day, 8, 0, 30),
		at(day, 8, 1, 0),
		at(day, 8, 2, 0),
	}
	for _, now := range ticks {
		s.tick(now)
	}

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, reminder.ID, notifier.sent[0].ReminderID)
	assert.Equal(t, "Morning water", notifier.sent[0].Title)
	assert.Equal(t, "Drink Water", notifier.sent[0].TypeLabel)

	// Replaying the same day yields nothing new.
	for _, now := range ticks {
		s.tick(now)
	}
	assert.Equal(t, 1, notifier.count())
}

func TestScheduler_MidnightReset(t *testing.T) {
	notifier := &recordingNotifier{}
	s := newTestScheduler(notifier)
	s.SetPermission(domain.PermissionGranted)
	s.SetReminders([]*domain.Reminder{activeReminder("08:00")})

	day1 := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	s.tick(at(day1, 8, 0, 2))
	require.Equal(t, 1, notifier.count())

	// Crossing midnight clears the dedupe set; the same reminder fires
	// again the next day.
	s.tick(at(day2, 0, 0, 30))
	s.tick(at(day2, 8, 0, 2))
	assert.Equal(t, 2, notifier.count())
}

func TestScheduler_MidnightReminderFiresOnNewDay(t *testing.T) {
	notifier := &recordingNotifier{}
	s := newTestScheduler(notifier)
	s.SetPermission(domain.PermissionGranted)
	s.SetReminders([]*domain.Reminder{activeReminder("00:00")})

	day1 := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	s.tick(at(day1, 0, 0, 3))
	require.Equal(t, 1, notifier.count())

	// The very first tick of the new day both resets and matches: reset
	// must win, so the 00:00 reminder fires again.
	s.tick(at(day2, 0, 0, 3))
	assert.Equal(t, 2, notifier.count())
}

func TestScheduler_RemovedReminderStopsFiring(t *testing.T) {
	notifier := &recordingNotifier{}
	s := newTestScheduler(notifier)
	s.SetPermission(domain.PermissionGranted)

	reminder := activeReminder("08:00")
	s.SetReminders([]*domain.Reminder{reminder})
	s.SetReminders(nil) // deleted before its time

	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)
	s.tick(at(day, 8, 0, 2))

	assert.Equal(t, 0, notifier.count())
}

func TestScheduler_DeactivatedReminderFiltered(t *testing.T) {
	notifier := &recordingNotifier{}
	s := newTestScheduler(notifier)
	s.SetPermission(domain.PermissionGranted)

	reminder := activeReminder("08:00")
	reminder.IsActive = false
	s.SetReminders([]*domain.Reminder{reminder})

	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)
	s.tick(at(day, 8, 0, 2))

	assert.Equal(t, 0, notifier.count())
}

func TestScheduler_PermissionGating(t *testing.T) {
	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)

	for _, state := range []domain.PermissionState{domain.PermissionDefault, domain.PermissionDenied} {
		t.Run(string(state), func(t *testing.T) {
			notifier := &recordingNotifier{}
			s := newTestScheduler(notifier)
			s.SetPermission(state)
			s.SetReminders([]*domain.Reminder{activeReminder("08:00")})

			s.tick(at(day, 8, 0, 2))
			assert.Equal(t, 0, notifier.count())
		})
	}
}

func TestScheduler_NoCatchUpAfterLateGrant(t *testing.T) {
	notifier := &recordingNotifier{}
	s := newTestScheduler(notifier)
	s.SetReminders([]*domain.Reminder{activeReminder("08:00")})

	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)

	// Time passes while permission is still default.
	s.tick(at(day, 8, 0, 2))
	require.Equal(t, 0, notifier.count())

	// Granting later the same day must not replay the missed match.
	s.SetPermission(domain.PermissionGranted)
	s.tick(at(day, 9, 30, 0))
	assert.Equal(t, 0, notifier.count())
}

func TestScheduler_DeliveryFailureDoesNotStopLoop(t *testing.T) {
	notifier := &recordingNotifier{fail: true}
	s := newTestScheduler(notifier)
	s.SetPermission(domain.PermissionGranted)

	morning := activeReminder("08:00")
	evening := activeReminder("18:00")
	s.SetReminders([]*domain.Reminder{morning, evening})

	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)

	s.tick(at(day, 8, 0, 2)) // delivery fails, loop survives

	notifier.mu.Lock()
	notifier.fail = false
	notifier.mu.Unlock()

	s.tick(at(day, 18, 0, 2))
	require.Equal(t, 1, notifier.count())
	assert.Equal(t, evening.ID, notifier.sent[0].ReminderID)
}

func TestScheduler_StartStop(t *testing.T) {
	notifier := &recordingNotifier{}
	s := New(uuid.New(), notifier, SystemClock(), 10*time.Millisecond)
	s.Start()

	// Stop blocks until the loop exits and is safe to call twice.
	s.Stop()
	s.Stop()
}
