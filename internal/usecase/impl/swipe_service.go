package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"subletswipe/config"
	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	"subletswipe/internal/usecase"

	"github.com/pkg/errors"
)

// queueFetchFallbackMessage is shown when a queue fetch fails without a
// usable message of its own.
const queueFetchFallbackMessage = "Something went wrong. Please try again."

var (
	// ErrNoActiveResource is returned when an operation needs an equipped
	// resource but the user has none yet.
	ErrNoActiveResource = errors.New("no active resource equipped")
	// ErrRecommendationsUnavailable is returned when the fallback feed is
	// requested by a lister or has already been shown this session.
	ErrRecommendationsUnavailable = errors.New("recommendations not available for this session")
)

// swipeSessionFactory implements the SwipeSessionFactory interface.
type swipeSessionFactory struct {
	matches           repository.MatchRepository
	swipes            repository.SwipeRepository
	logger            *slog.Logger
	celebrationWindow time.Duration
}

// NewSwipeSessionFactory is the constructor for swipeSessionFactory.
func NewSwipeSessionFactory(
	cfg *config.Config,
	matches repository.MatchRepository,
	swipes repository.SwipeRepository,
	logger *slog.Logger,
) usecase.SwipeSessionFactory {
	window := 3 * time.Second
	if cfg.Swipe != nil && cfg.Swipe.CelebrationWindow > 0 {
		window = cfg.Swipe.CelebrationWindow
	}

	return &swipeSessionFactory{
		matches:           matches,
		swipes:            swipes,
		logger:            logger,
		celebrationWindow: window,
	}
}

// NewSession mints a session bound to the acting role.
func (f *swipeSessionFactory) NewSession(role entity.ActiveRole) usecase.SwipeSession {
	return &swipeSession{
		role:              role,
		matches:           f.matches,
		swipes:            f.swipes,
		logger:            f.logger,
		celebrationWindow: f.celebrationWindow,
		phase:             usecase.PhaseLoading,
	}
}

// swipeSession drives one candidate queue to completion. The role is fixed
// for the session's lifetime; a role switch means a new session.
type swipeSession struct {
	role              entity.ActiveRole
	matches           repository.MatchRepository
	swipes            repository.SwipeRepository
	logger            *slog.Logger
	celebrationWindow time.Duration

	mu                   sync.Mutex
	phase                usecase.SessionPhase
	queue                []entity.MatchCandidate
	cursor               int
	errMsg               string
	celebration          *usecase.Celebration
	celebrationTimer     *time.Timer
	recommendationsShown bool
}

// LoadQueue fetches the candidate queue for the session's role and resets the
// cursor. A failure moves the session to PhaseError with the failure's
// message; there is no automatic retry.
func (s *swipeSession) LoadQueue(ctx context.Context) error {
	if !s.role.HasResource() {
		s.failQueueLoad(ErrNoActiveResource)

		return ErrNoActiveResource
	}

	s.setPhase(usecase.PhaseLoading)

	var (
		queue []entity.MatchCandidate
		err   error
	)
	if s.role.IsRenter {
		queue, err = s.matches.ListingCandidates(ctx, s.role.ResourceID)
	} else {
		queue, err = s.matches.RenterCandidates(ctx, s.role.ResourceID)
	}
	if err != nil {
		s.failQueueLoad(err)

		return errors.Wrap(err, "load candidate queue")
	}

	s.replaceQueue(queue)

	return nil
}

// LoadRecommendations replaces the queue with the fallback feed. Renter-only,
// and offered at most once per session: once shown, the option disappears
// even if the recommendations also run out.
func (s *swipeSession) LoadRecommendations(ctx context.Context) error {
	s.mu.Lock()
	if !s.role.IsRenter || s.recommendationsShown {
		s.mu.Unlock()

		return ErrRecommendationsUnavailable
	}
	s.phase = usecase.PhaseLoadingRecommendations
	s.mu.Unlock()

	queue, err := s.matches.Recommendations(ctx, s.role.ResourceID)
	if err != nil {
		s.failQueueLoad(err)

		return errors.Wrap(err, "load recommendations")
	}

	s.mu.Lock()
	s.recommendationsShown = true
	s.mu.Unlock()

	s.replaceQueue(queue)

	return nil
}

// RecordSwipe converts the gesture on the candidate at candidateIndex into a
// decision. The cursor advances exactly once per call no matter what the
// network does; the submission itself is at-most-once and never retried.
func (s *swipeSession) RecordSwipe(ctx context.Context, candidateIndex int, isRight bool) {
	s.mu.Lock()
	if s.phase != usecase.PhaseReady || candidateIndex < 0 || candidateIndex >= len(s.queue) {
		s.mu.Unlock()

		return
	}
	candidate := s.queue[candidateIndex]

	// The gesture already happened on screen; the cursor follows it
	// unconditionally, before the server hears anything.
	s.cursor++
	if s.cursor >= len(s.queue) {
		s.phase = usecase.PhaseExhausted
	}
	s.mu.Unlock()

	targetID := candidate.TargetID(s.role.IsRenter)
	if targetID == 0 {
		s.logger.Warn("candidate has no target id, swipe not submitted",
			slog.Int("candidateIndex", candidateIndex),
			slog.String("role", s.role.Role().String()))

		return
	}

	result, err := s.swipes.Submit(ctx, s.role, entity.SwipeDecision{
		TargetID: targetID,
		IsRight:  isRight,
	})
	if err != nil {
		// Swallowed: the swipe is fire-and-forget and the gesture has
		// already been honored locally.
		s.logger.Error("swipe submission failed",
			slog.Int("targetID", targetID),
			slog.Bool("isRight", isRight),
			slog.Any("error", err))

		return
	}

	if !result.Matched {
		return
	}

	s.startCelebration(candidate.CounterpartName(s.role.IsRenter))
}

// DismissCelebration clears the match popup early.
func (s *swipeSession) DismissCelebration() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.celebration = nil
	if s.celebrationTimer != nil {
		s.celebrationTimer.Stop()
		s.celebrationTimer = nil
	}
}

// Snapshot returns the current render model.
func (s *swipeSession) Snapshot() usecase.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return usecase.SessionSnapshot{
		Phase:       s.phase,
		Queue:       s.queue,
		Cursor:      s.cursor,
		Error:       s.errMsg,
		Celebration: s.celebration,
		CanFetchRecommendations: s.phase == usecase.PhaseExhausted &&
			s.role.IsRenter && !s.recommendationsShown,
	}
}

func (s *swipeSession) setPhase(phase usecase.SessionPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = phase
}

func (s *swipeSession) replaceQueue(queue []entity.MatchCandidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = queue
	s.cursor = 0
	s.errMsg = ""
	if len(queue) == 0 {
		s.phase = usecase.PhaseExhausted
	} else {
		s.phase = usecase.PhaseReady
	}
}

func (s *swipeSession) failQueueLoad(err error) {
	message := err.Error()
	if message == "" {
		message = queueFetchFallbackMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = usecase.PhaseError
	s.errMsg = message
}

// startCelebration activates the one-shot match popup and arms the timer that
// self-clears it.
func (s *swipeSession) startCelebration(counterpartName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.celebration = &usecase.Celebration{CounterpartName: counterpartName}
	if s.celebrationTimer != nil {
		s.celebrationTimer.Stop()
	}
	s.celebrationTimer = time.AfterFunc(s.celebrationWindow, s.DismissCelebration)
}
