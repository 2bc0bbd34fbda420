package service

import (
	"errors"
	"time"

	"freewise-server/internal/domain"
	"freewise-server/internal/review"

	"github.com/google/uuid"
)

// ReviewService is the session manager for review passes. It wraps the
// selector's one-shot batch in a resumable queue keyed by an opaque token,
// and mirrors progress into a durable ReviewSession row. The in-memory queue
// is the source of truth for "what's next" within a live pass; the durable
// row is the source of truth for history.
type ReviewService struct {
	highlights domain.HighlightRepository
	books      domain.BookRepository
	sessions   domain.ReviewSessionRepository
	settings   domain.SettingsRepository
	queues     review.SessionStore
	selector   *review.Selector
	idle       time.Duration
	logger     domain.Logger
}

func NewReviewService(
	highlights domain.HighlightRepository,
	books domain.BookRepository,
	sessions domain.ReviewSessionRepository,
	settings domain.SettingsRepository,
	queues review.SessionStore,
	selector *review.Selector,
	idle time.Duration,
	logger domain.Logger,
) domain.ReviewService {
	return &ReviewService{
		highlights: highlights,
		books:      books,
		sessions:   sessions,
		settings:   settings,
		queues:     queues,
		selector:   selector,
		idle:       idle,
		logger:     logger,
	}
}

// Current returns the card at the head of the pass for sessionToken,
// starting a fresh pass when the token is empty, unknown, expired, or
// forceReset is set. An expired or absent session is never an error.
func (s *ReviewService) Current(sessionToken string, forceReset bool, now time.Time) (*domain.ReviewCurrent, error) {
	if sessionToken != "" && !forceReset {
		if st, ok := s.queues.Get(sessionToken); ok && !st.Expired(now, s.idle) {
			h, err := s.resolveCurrent(st)
			if err != nil {
				return nil, err
			}
			if h != nil {
				st.LastTouched = now
				s.queues.Put(st)
				return &domain.ReviewCurrent{
					Item:         h,
					Position:     st.Cursor + 1,
					Total:        len(st.HighlightIDs),
					SessionToken: st.Token,
				}, nil
			}
			// Every remaining id vanished out-of-band; close the pass out
			// and fall through to a fresh one.
			if err := s.finalize(st, now); err != nil {
				return nil, err
			}
		}
	}
	return s.startSession(now)
}

// Advance applies action to the current card, records it on the durable
// session row, and moves the cursor. The pass completes when the queue is
// exhausted.
func (s *ReviewService) Advance(sessionToken, highlightID string, action domain.ReviewAction, now time.Time) (*domain.ReviewAdvance, error) {
	if sessionToken == "" {
		return nil, domain.ErrReviewSessionNotFound
	}
	st, ok := s.queues.Get(sessionToken)
	if !ok || st.Expired(now, s.idle) || st.Cursor >= len(st.HighlightIDs) {
		return nil, domain.ErrReviewSessionNotFound
	}
	if st.HighlightIDs[st.Cursor] != highlightID {
		return nil, domain.ErrStaleReview
	}

	h, err := s.highlights.GetByID(highlightID)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.GetByUUID(sessionToken)
	if err != nil {
		return nil, err
	}

	switch action {
	case domain.ActionReviewed:
		t := now
		h.LastReviewedAt = &t
		h.ReviewCount++
		sess.HighlightsReviewed++
	case domain.ActionDiscarded:
		h.IsDiscarded = true
		// Discard takes precedence: a discarded highlight is never favorited.
		h.IsFavorited = false
		sess.HighlightsDiscarded++
	case domain.ActionFavorited:
		if h.IsDiscarded {
			return nil, domain.ErrHighlightDiscarded
		}
		if !h.IsFavorited {
			sess.HighlightsFavorited++
		}
		h.IsFavorited = true
	default:
		return nil, domain.ErrInvalidAction
	}

	h.UpdatedAt = now
	if _, err := s.highlights.Update(h); err != nil {
		return nil, err
	}

	st.Cursor++
	st.LastTouched = now
	total := len(st.HighlightIDs)

	next, err := s.resolveCurrent(st)
	if err != nil {
		return nil, err
	}
	if next == nil {
		sess.IsCompleted = true
		t := now
		sess.CompletedAt = &t
		if err := s.sessions.Update(sess); err != nil {
			return nil, err
		}
		s.queues.Delete(sessionToken)
		s.logger.Info("Review session completed", "session_token", sessionToken,
			"reviewed", sess.HighlightsReviewed, "discarded", sess.HighlightsDiscarded, "favorited", sess.HighlightsFavorited)
		return &domain.ReviewAdvance{Position: total, Total: total, Completed: true}, nil
	}

	if err := s.sessions.Update(sess); err != nil {
		return nil, err
	}
	s.queues.Put(st)
	return &domain.ReviewAdvance{NextItem: next, Position: st.Cursor + 1, Total: total, Completed: false}, nil
}

// SelectForReview runs the selector alone, for batch and non-interactive
// callers. n <= 0 resolves the target from settings.
func (s *ReviewService) SelectForReview(n int, now time.Time) ([]*domain.Highlight, error) {
	if n <= 0 {
		target, err := s.targetCount()
		if err != nil {
			return nil, err
		}
		n = target
	}
	return s.buildBatch(n, now)
}

func (s *ReviewService) startSession(now time.Time) (*domain.ReviewCurrent, error) {
	s.queues.SweepExpired(now, s.idle)

	target, err := s.targetCount()
	if err != nil {
		return nil, err
	}
	picked, err := s.buildBatch(target, now)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		// Nothing to review: no durable row, no token.
		return &domain.ReviewCurrent{Position: 0, Total: 0}, nil
	}

	token := uuid.NewString()
	created, err := s.sessions.Create(&domain.ReviewSession{
		SessionUUID: token,
		StartedAt:   now,
		SessionDate: now.Format(domain.SessionDateFormat),
		TargetCount: target,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(picked))
	for i, h := range picked {
		ids[i] = h.ID
	}
	s.queues.Put(&review.QueueState{
		Token:        token,
		SessionID:    created.ID,
		HighlightIDs: ids,
		LastTouched:  now,
	})

	s.logger.Info("Review session started", "session_token", token, "queue_size", len(ids), "target", target)
	return &domain.ReviewCurrent{Item: picked[0], Position: 1, Total: len(ids), SessionToken: token}, nil
}

func (s *ReviewService) buildBatch(n int, now time.Time) ([]*domain.Highlight, error) {
	eligible, err := s.highlights.ListEligible()
	if err != nil {
		return nil, err
	}
	books, err := s.books.List()
	if err != nil {
		return nil, err
	}
	weights := make(map[string]float64, len(books))
	for _, b := range books {
		weights[b.ID] = b.ReviewWeight
	}
	return s.selector.Select(eligible, weights, n, now), nil
}

func (s *ReviewService) targetCount() (int, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return 0, err
	}
	if settings == nil || settings.DailyReviewCount <= 0 {
		return domain.DefaultDailyReviewCount, nil
	}
	return settings.DailyReviewCount, nil
}

// resolveCurrent walks the queue from the cursor, skipping ids that no
// longer resolve (deleted out-of-band since the queue was built), and
// returns the current highlight. Returns nil when the queue is exhausted.
// The possibly advanced cursor is left in st for the caller to persist.
func (s *ReviewService) resolveCurrent(st *review.QueueState) (*domain.Highlight, error) {
	for st.Cursor < len(st.HighlightIDs) {
		h, err := s.highlights.GetByID(st.HighlightIDs[st.Cursor])
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, domain.ErrHighlightNotFound) {
			return nil, err
		}
		st.Cursor++
	}
	return nil, nil
}

// finalize marks the durable row completed (once) and drops the queue entry.
func (s *ReviewService) finalize(st *review.QueueState, now time.Time) error {
	defer s.queues.Delete(st.Token)
	sess, err := s.sessions.GetByUUID(st.Token)
	if err != nil {
		if errors.Is(err, domain.ErrReviewSessionNotFound) {
			return nil
		}
		return err
	}
	if sess.IsCompleted {
		return nil
	}
	sess.IsCompleted = true
	t := now
	sess.CompletedAt = &t
	return s.sessions.Update(sess)
}
