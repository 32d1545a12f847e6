package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/repository"
)

const reloadTimeout = 5 * time.Second

// session is one user's running scheduler plus a connection refcount. The
// scheduler lives exactly as long as the user has at least one open push
// channel; the last disconnect tears it down.
type session struct {
	sched *Scheduler
	refs  int
}

// Manager owns the scheduler lifecycle per user.
type Manager struct {
	reminderRepo repository.ReminderRepository
	notifier     Notifier
	clock        Clock
	pollInterval time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewManager(reminderRepo repository.ReminderRepository, notifier Notifier, clock Clock, pollInterval time.Duration) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		reminderRepo: reminderRepo,
		notifier:     notifier,
		clock:        clock,
		pollInterval: pollInterval,
		sessions:     make(map[uuid.UUID]*session),
	}
}

// Attach registers a client connection for the user, starting a scheduler
// on the first one. The active reminder set is loaded before the loop runs.
func (m *Manager) Attach(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[userID]; ok {
		sess.refs++
		return nil
	}

	reminders, err := m.reminderRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return err
	}

	sched := New(userID, m.notifier, m.clock, m.pollInterval)
	sched.SetReminders(reminders)
	sched.Start()

	m.sessions[userID] = &session{sched: sched, refs: 1}
	return nil
}

// Detach drops one connection reference; the last one stops the scheduler
// so no timer outlives the user's session.
func (m *Manager) Detach(userID uuid.UUID) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if ok {
		sess.refs--
		if sess.refs <= 0 {
			delete(m.sessions, userID)
		} else {
			sess = nil
		}
	}
	m.mu.Unlock()

	if ok && sess != nil {
		sess.sched.Stop()
	}
}

// SetPermission forwards the client-reported permission state to the user's
// scheduler, if one is running.
func (m *Manager) SetPermission(userID uuid.UUID, p domain.PermissionState) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	m.mu.Unlock()

	if ok {
		sess.sched.SetPermission(p)
	}
}

// ReminderSetChanged reloads the user's active reminders into the running
// scheduler. Implements service.ReminderChangeListener. A reload failure
// keeps the previous set; the next change or reconnect retries.
func (m *Manager) ReminderSetChanged(userID uuid.UUID) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	m.mu.Unlock()

	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	reminders, err := m.reminderRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		log.Printf("ERROR [scheduler.ReminderSetChanged] reload user=%s: %v", userID, err)
		return
	}

	sess.sched.SetReminders(reminders)
}

// StopAll tears down every running scheduler. Used at server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.sched.Stop()
	}
}
