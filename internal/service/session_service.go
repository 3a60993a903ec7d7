package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foundercompass/internal/catalog"
	"foundercompass/internal/entity"
	"foundercompass/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type StartSessionResult struct {
	Session   *entity.Session
	User      *entity.User
	Questions []catalog.Question
}

type TrackEventInput struct {
	SessionID string
	UserID    string
	EventType entity.TrackingEventType
	Details   map[string]any
}

type SessionService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	uow      repository.UnitOfWork
	events   repository.TrackingEventRepository
	catalog  *catalog.Catalog
	insights InsightGenerator
	notifier ReportNotifier
	clock    Clock
	logger   *logrus.Logger
}

func NewSessionService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	uow repository.UnitOfWork,
	events repository.TrackingEventRepository,
	questionCatalog *catalog.Catalog,
	insights InsightGenerator,
	notifier ReportNotifier,
	clock Clock,
	logger *logrus.Logger,
) *SessionService {
	return &SessionService{
		users:    users,
		sessions: sessions,
		uow:      uow,
		events:   events,
		catalog:  questionCatalog,
		insights: insights,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Start creates a fresh session for the user behind the email. The question
// set is filtered by the user's stored company size; whatever the caller
// claims about their stage is ignored.
func (s *SessionService) Start(ctx context.Context, email string) (*StartSessionResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	session := &entity.Session{
		UserID:    user.ID,
		Answers:   datatypes.JSON([]byte("{}")),
		Status:    entity.SessionStarted,
		StartTime: s.now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		// The user row predates this call and stays committed.
		return nil, fmt.Errorf("%w: create session: %v", ErrPersistence, err)
	}

	return &StartSessionResult{
		Session:   session,
		User:      user,
		Questions: s.catalog.ForStage(user.CompanySize),
	}, nil
}

// Complete finalizes a session and produces its report. The submitted answers
// replace whatever the session held. The status flip and report insert commit
// in one transaction; a session that already left "started" is rejected
// without generating anything.
func (s *SessionService) Complete(ctx context.Context, sessionID string, answers entity.AnswerSet) (*entity.Report, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, ErrInvalidSessionID
	}

	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	answersJSON, err := answers.JSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedAnswer, err)
	}

	now := s.now()
	insight := s.insights.Generate(answers)
	nextMoveJSON, err := json.Marshal(insight.NextMove)
	if err != nil {
		return nil, err
	}

	report := &entity.Report{
		UserID:                  session.UserID,
		SessionID:               id,
		MindsetShift:            insight.MindsetShift,
		MindsetShiftInsight:     insight.MindsetShiftInsight,
		OperationalFocus:        insight.OperationalFocus,
		OperationalFocusInsight: insight.OperationalFocusInsight,
		NextMove:                datatypes.JSON(nextMoveJSON),
		GeneratedAt:             now,
	}

	err = s.uow.Do(ctx, func(sessions repository.SessionRepository, reports repository.ReportRepository) error {
		rows, err := sessions.Complete(ctx, id, answersJSON, now)
		if err != nil {
			return fmt.Errorf("%w: complete session: %v", ErrPersistence, err)
		}
		if rows == 0 {
			return ErrSessionAlreadyCompleted
		}
		if err := reports.Create(ctx, report); err != nil {
			return fmt.Errorf("%w: save report: %v", ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordCompletion(ctx, session, report)
	s.notifyAsync(ctx, session.UserID, report)

	return report, nil
}

// RecordEvent appends a client-submitted tracking event.
func (s *SessionService) RecordEvent(ctx context.Context, input TrackEventInput) error {
	if !input.EventType.Valid() {
		return ErrInvalidInput
	}
	event := &entity.TrackingEvent{
		EventType: input.EventType,
		Timestamp: s.now(),
	}
	if input.SessionID != "" {
		id, err := uuid.Parse(input.SessionID)
		if err != nil {
			return ErrInvalidSessionID
		}
		event.SessionID = &id
	}
	if input.UserID != "" {
		id, err := uuid.Parse(input.UserID)
		if err != nil {
			return ErrInvalidUserID
		}
		event.UserID = &id
	}
	if input.Details != nil {
		bytes, err := json.Marshal(input.Details)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		event.Details = datatypes.JSON(bytes)
	}
	return s.events.Create(ctx, event)
}

// SweepDroppedOff moves sessions idle in "started" past the given age to
// "dropped_off".
func (s *SessionService) SweepDroppedOff(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.sessions.MarkStaleDroppedOff(ctx, s.now().Add(-olderThan))
}

func (s *SessionService) recordCompletion(ctx context.Context, session *entity.Session, report *entity.Report) {
	if s.events == nil {
		return
	}
	details, _ := json.Marshal(map[string]any{"report_id": report.ID.String()})
	event := &entity.TrackingEvent{
		SessionID: &session.ID,
		UserID:    &session.UserID,
		EventType: entity.EventCompletion,
		Details:   datatypes.JSON(details),
		Timestamp: s.now(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		s.logger.WithError(err).WithField("session_id", session.ID).Warn("failed to record completion event")
	}
}

func (s *SessionService) notifyAsync(ctx context.Context, userID uuid.UUID, report *entity.Report) {
	if s.notifier == nil {
		return
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("skipping report email, user lookup failed")
		return
	}
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.SendReportEmail(sendCtx, user, report); err != nil {
			s.logger.WithError(err).WithField("report_id", report.ID).Warn("report email failed")
		}
	}()
}

func (s *SessionService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
