package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"foundercompass/internal/entity"
	"foundercompass/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || !user.IsActive {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.IsActive {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) TouchLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		stamp := at
		user.LastLoginAt = &stamp
	}
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memSessionRepo struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*entity.Session
	createErr   error
	completeErr error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *memSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (r *memSessionRepo) Complete(_ context.Context, id uuid.UUID, answers datatypes.JSON, endTime time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completeErr != nil {
		return 0, r.completeErr
	}
	session, ok := r.sessions[id]
	if !ok || session.Status != entity.SessionStarted {
		return 0, nil
	}
	session.Answers = answers
	session.Status = entity.SessionCompleted
	end := endTime
	session.EndTime = &end
	return 1, nil
}

func (r *memSessionRepo) MarkStaleDroppedOff(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var swept int64
	for _, session := range r.sessions {
		if session.Status == entity.SessionStarted && session.StartTime.Before(cutoff) {
			session.Status = entity.SessionDroppedOff
			swept++
		}
	}
	return swept, nil
}

func (r *memSessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

type memReportRepo struct {
	mu        sync.Mutex
	reports   []entity.Report
	createErr error
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{}
}

func (r *memReportRepo) Create(_ context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	for _, existing := range r.reports {
		if existing.SessionID == report.SessionID {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.reports = append(r.reports, *report)
	return nil
}

func (r *memReportRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]entity.Report, 0)
	for _, report := range r.reports {
		if report.UserID == userID {
			matched = append(matched, report)
		}
	}
	return matched, nil
}

func (r *memReportRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// memUnitOfWork mimics transactional rollback: report writes are discarded
// and session completion undone when fn returns an error.
type memUnitOfWork struct {
	sessions *memSessionRepo
	reports  *memReportRepo
}

func (u *memUnitOfWork) Do(ctx context.Context, fn func(sessions repository.SessionRepository, reports repository.ReportRepository) error) error {
	u.sessions.mu.Lock()
	sessionSnapshot := make(map[uuid.UUID]entity.Session, len(u.sessions.sessions))
	for id, s := range u.sessions.sessions {
		sessionSnapshot[id] = *s
	}
	u.sessions.mu.Unlock()

	u.reports.mu.Lock()
	reportSnapshot := append([]entity.Report(nil), u.reports.reports...)
	u.reports.mu.Unlock()

	if err := fn(u.sessions, u.reports); err != nil {
		u.sessions.mu.Lock()
		u.sessions.sessions = make(map[uuid.UUID]*entity.Session, len(sessionSnapshot))
		for id := range sessionSnapshot {
			restored := sessionSnapshot[id]
			u.sessions.sessions[id] = &restored
		}
		u.sessions.mu.Unlock()

		u.reports.mu.Lock()
		u.reports.reports = reportSnapshot
		u.reports.mu.Unlock()
		return err
	}
	return nil
}

type memEventRepo struct {
	mu     sync.Mutex
	events []entity.TrackingEvent
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{}
}

func (r *memEventRepo) Create(_ context.Context, event *entity.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *memEventRepo) list() []entity.TrackingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.TrackingEvent(nil), r.events...)
}

type recordingNotifier struct {
	err  error
	sent chan *entity.Report
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{err: err, sent: make(chan *entity.Report, 1)}
}

func (n *recordingNotifier) SendReportEmail(_ context.Context, _ *entity.User, report *entity.Report) error {
	n.sent <- report
	return n.err
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

type stubInsightGenerator struct {
	insight Insight
}

func (g stubInsightGenerator) Generate(_ entity.AnswerSet) Insight {
	return g.insight
}
