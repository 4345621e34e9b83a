package usecase

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// SessionPhase is the lifecycle state of one swipe session.
type SessionPhase string

const (
	// PhaseLoading means the initial queue fetch is in flight.
	PhaseLoading SessionPhase = "loading"
	// PhaseReady means candidates are available at the cursor.
	PhaseReady SessionPhase = "ready"
	// PhaseExhausted means the cursor has passed the end of the queue.
	PhaseExhausted SessionPhase = "exhausted"
	// PhaseLoadingRecommendations means the fallback feed fetch is in flight.
	PhaseLoadingRecommendations SessionPhase = "loading_recommendations"
	// PhaseError means a queue fetch failed; the session must be recreated
	// to retry.
	PhaseError SessionPhase = "error"
)

// Celebration is the one-shot mutual-match UI state. It activates exactly
// once per qualifying swipe and self-clears after the configured window.
type Celebration struct {
	CounterpartName string
}

// SessionSnapshot is the render model one swipe screen reads.
type SessionSnapshot struct {
	Phase  SessionPhase
	Queue  []entity.MatchCandidate
	Cursor int
	// Error carries the user-visible message when Phase is PhaseError.
	Error string
	// Celebration is non-nil while the match popup should be showing.
	Celebration *Celebration
	// CanFetchRecommendations reports whether the exhausted screen should
	// still offer the recommendations fallback.
	CanFetchRecommendations bool
}

// Current returns the candidate under the cursor, if the session is Ready.
func (s SessionSnapshot) Current() (entity.MatchCandidate, bool) {
	if s.Phase != PhaseReady || s.Cursor >= len(s.Queue) {
		return entity.MatchCandidate{}, false
	}

	return s.Queue[s.Cursor], true
}

// SwipeSession drives one candidate queue to completion for a fixed
// (role, resource) pair. A role switch invalidates the whole session; the
// screen creates a fresh one instead of merging queues.
type SwipeSession interface {
	// LoadQueue fetches the candidate queue for the session's role and
	// resets the cursor. A failure moves the session to PhaseError with
	// the failure's message.
	LoadQueue(ctx context.Context) error

	// LoadRecommendations replaces the queue with the fallback feed.
	// Renter-only, and offered at most once per session.
	LoadRecommendations(ctx context.Context) error

	// RecordSwipe converts the gesture on the candidate at the given index
	// into a right/left decision. The cursor always advances exactly once;
	// the submission is fire-and-forget and a network failure never blocks
	// or rolls back the gesture.
	RecordSwipe(ctx context.Context, candidateIndex int, isRight bool)

	// DismissCelebration clears the match popup early (backdrop press).
	DismissCelebration()

	// Snapshot returns the current render model.
	Snapshot() SessionSnapshot
}

// SwipeSessionFactory mints sessions bound to an acting role. The home screen
// requests a new session whenever (user, isRenter, resourceId) changes.
type SwipeSessionFactory interface {
	NewSession(role entity.ActiveRole) SwipeSession
}
