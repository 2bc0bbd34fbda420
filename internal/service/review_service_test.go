package service

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"freewise-server/internal/domain"
	"freewise-server/internal/review"
)

var reviewNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type reviewFixture struct {
	svc        domain.ReviewService
	highlights *mockHighlightRepo
	books      *mockBookRepo
	sessions   *mockSessionRepo
	settings   *mockSettingsRepo
	queues     *review.MemoryStore
}

func newReviewFixture(seed int64) *reviewFixture {
	f := &reviewFixture{
		highlights: newMockHighlightRepo(),
		books:      newMockBookRepo(),
		sessions:   newMockSessionRepo(),
		settings:   &mockSettingsRepo{},
		queues:     review.NewMemoryStore(),
	}
	f.svc = NewReviewService(
		f.highlights, f.books, f.sessions, f.settings,
		f.queues, review.NewSelector(rand.New(rand.NewSource(seed))),
		24*time.Hour, NewMockLogger(),
	)
	return f
}

// seedStale adds n stale highlights, each in its own book, so the diversity
// cap never shortens a batch.
func (f *reviewFixture) seedStale(n int) {
	for i := 0; i < n; i++ {
		bookID := string(rune('a' + i))
		f.books.put(&domain.Book{ID: bookID, Title: "Book " + bookID, ReviewWeight: 1.0})
		last := reviewNow.Add(-100 * 24 * time.Hour)
		f.highlights.put(&domain.Highlight{
			ID:             "h" + bookID,
			BookID:         &bookID,
			Text:           "highlight " + bookID,
			LastReviewedAt: &last,
		})
	}
}

func TestReviewService_RoundTrip(t *testing.T) {
	f := newReviewFixture(1)
	f.seedStale(5)
	f.settings.settings = &domain.Settings{ID: "settings-1", DailyReviewCount: 5}

	current, err := f.svc.Current("", false, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if current.Item == nil || current.Total != 5 || current.Position != 1 {
		t.Fatalf("unexpected initial state: %+v", current)
	}
	if current.SessionToken == "" {
		t.Fatalf("expected a session token")
	}

	token := current.SessionToken
	item := current.Item
	for i := 0; i < 5; i++ {
		adv, err := f.svc.Advance(token, item.ID, domain.ActionReviewed, reviewNow)
		if err != nil {
			t.Fatalf("advance %d: expected no error, got %v", i+1, err)
		}
		if i < 4 {
			if adv.Completed {
				t.Fatalf("advance %d: completed too early", i+1)
			}
			if adv.NextItem == nil {
				t.Fatalf("advance %d: expected a next item", i+1)
			}
			if adv.Position != i+2 {
				t.Fatalf("advance %d: expected position %d, got %d", i+1, i+2, adv.Position)
			}
			item = adv.NextItem
		} else {
			if !adv.Completed {
				t.Fatalf("expected completion on the 5th advance")
			}
			if adv.NextItem != nil {
				t.Fatalf("expected no next item after completion")
			}
		}
	}

	sess, err := f.sessions.GetByUUID(token)
	if err != nil {
		t.Fatalf("expected durable session row, got %v", err)
	}
	if sess.HighlightsReviewed != 5 {
		t.Fatalf("expected highlights_reviewed=5, got %d", sess.HighlightsReviewed)
	}
	if !sess.IsCompleted || sess.CompletedAt == nil {
		t.Fatalf("expected session to be finalized: %+v", sess)
	}
	if sess.SessionDate != "2026-03-10" {
		t.Fatalf("expected pure calendar session date, got %q", sess.SessionDate)
	}

	// Every reviewed highlight got its metadata bumped.
	for _, h := range f.highlights.highlights {
		if h.ReviewCount != 1 || h.LastReviewedAt == nil || !h.LastReviewedAt.Equal(reviewNow) {
			t.Fatalf("expected review metadata on %s, got %+v", h.ID, h)
		}
	}

	// The queue entry is gone: a new Current starts a fresh pass.
	next, err := f.svc.Current(token, false, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if next.SessionToken == token {
		t.Fatalf("expected a fresh session after completion")
	}
}

func TestReviewService_CurrentIsIdempotent(t *testing.T) {
	f := newReviewFixture(2)
	f.seedStale(5)

	first, err := f.svc.Current("", false, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := f.svc.Current(first.SessionToken, false, reviewNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.SessionToken != first.SessionToken {
		t.Fatalf("expected the same session token")
	}
	if second.Item.ID != first.Item.ID || second.Position != first.Position {
		t.Fatalf("expected get-current to not advance: first=%+v second=%+v", first, second)
	}
}

func TestReviewService_ForceResetStartsFresh(t *testing.T) {
	f := newReviewFixture(3)
	f.seedStale(5)

	first, _ := f.svc.Current("", false, reviewNow)
	second, err := f.svc.Current(first.SessionToken, true, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.SessionToken == first.SessionToken {
		t.Fatalf("expected forceReset to mint a new session")
	}
}

func TestReviewService_ExpiredSessionIsReplaced(t *testing.T) {
	f := newReviewFixture(4)
	f.seedStale(5)

	first, _ := f.svc.Current("", false, reviewNow)
	later := reviewNow.Add(25 * time.Hour)

	second, err := f.svc.Current(first.SessionToken, false, later)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.SessionToken == first.SessionToken {
		t.Fatalf("expected an expired session to be treated as absent")
	}
	// The expired entry was swept during new-session creation.
	if _, ok := f.queues.Get(first.SessionToken); ok {
		t.Fatalf("expected the expired queue entry to be swept")
	}
}

func TestReviewService_AdvanceUnknownToken(t *testing.T) {
	f := newReviewFixture(5)
	f.seedStale(5)

	_, err := f.svc.Advance("no-such-token", "ha", domain.ActionReviewed, reviewNow)
	if !errors.Is(err, domain.ErrReviewSessionNotFound) {
		t.Fatalf("expected ErrReviewSessionNotFound, got %v", err)
	}
}

func TestReviewService_AdvanceStaleHighlightRejected(t *testing.T) {
	f := newReviewFixture(6)
	f.seedStale(5)

	current, _ := f.svc.Current("", false, reviewNow)

	var other string
	for id := range f.highlights.highlights {
		if id != current.Item.ID {
			other = id
			break
		}
	}
	_, err := f.svc.Advance(current.SessionToken, other, domain.ActionReviewed, reviewNow)
	if !errors.Is(err, domain.ErrStaleReview) {
		t.Fatalf("expected ErrStaleReview, got %v", err)
	}

	// No side effects: cursor, counters and highlights untouched.
	again, _ := f.svc.Current(current.SessionToken, false, reviewNow)
	if again.Item.ID != current.Item.ID || again.Position != current.Position {
		t.Fatalf("expected rejected advance to leave the cursor alone")
	}
	sess, _ := f.sessions.GetByUUID(current.SessionToken)
	if sess.HighlightsReviewed != 0 {
		t.Fatalf("expected no counters bumped, got %d", sess.HighlightsReviewed)
	}
}

func TestReviewService_DiscardClearsFavorite(t *testing.T) {
	f := newReviewFixture(7)
	f.seedStale(5)

	current, _ := f.svc.Current("", false, reviewNow)

	// Favorite the current card out-of-band, then discard it in-session.
	h, _ := f.highlights.GetByID(current.Item.ID)
	h.IsFavorited = true
	f.highlights.put(h)

	if _, err := f.svc.Advance(current.SessionToken, current.Item.ID, domain.ActionDiscarded, reviewNow); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	updated, _ := f.highlights.GetByID(current.Item.ID)
	if !updated.IsDiscarded {
		t.Fatalf("expected highlight to be discarded")
	}
	if updated.IsFavorited {
		t.Fatalf("expected discard to clear the favorite flag")
	}
	sess, _ := f.sessions.GetByUUID(current.SessionToken)
	if sess.HighlightsDiscarded != 1 {
		t.Fatalf("expected discarded counter of 1, got %d", sess.HighlightsDiscarded)
	}
}

func TestReviewService_FavoriteDiscardedRejected(t *testing.T) {
	f := newReviewFixture(8)
	f.seedStale(5)

	current, _ := f.svc.Current("", false, reviewNow)

	// Discard the current card out-of-band; favoriting it must be rejected.
	h, _ := f.highlights.GetByID(current.Item.ID)
	h.IsDiscarded = true
	f.highlights.put(h)

	_, err := f.svc.Advance(current.SessionToken, current.Item.ID, domain.ActionFavorited, reviewNow)
	if !errors.Is(err, domain.ErrHighlightDiscarded) {
		t.Fatalf("expected ErrHighlightDiscarded, got %v", err)
	}

	again, _ := f.svc.Current(current.SessionToken, false, reviewNow)
	if again.Position != current.Position {
		t.Fatalf("expected rejected favorite to leave the cursor alone")
	}
}

func TestReviewService_FavoritedCounterOnlyWhenNew(t *testing.T) {
	f := newReviewFixture(9)
	f.seedStale(5)

	current, _ := f.svc.Current("", false, reviewNow)

	h, _ := f.highlights.GetByID(current.Item.ID)
	h.IsFavorited = true
	f.highlights.put(h)

	adv, err := f.svc.Advance(current.SessionToken, current.Item.ID, domain.ActionFavorited, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if adv.Position != 2 {
		t.Fatalf("expected the pass to advance, got position %d", adv.Position)
	}
	sess, _ := f.sessions.GetByUUID(current.SessionToken)
	if sess.HighlightsFavorited != 0 {
		t.Fatalf("expected no favorited counter bump for an already-favorited card, got %d", sess.HighlightsFavorited)
	}
}

func TestReviewService_EmptyPool(t *testing.T) {
	f := newReviewFixture(10)

	current, err := f.svc.Current("", false, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if current.Item != nil || current.Total != 0 || current.Position != 0 {
		t.Fatalf("expected empty review state, got %+v", current)
	}
	if current.SessionToken != "" {
		t.Fatalf("expected no session token when there is nothing to review")
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("expected no durable session row for an empty pass")
	}
}

func TestReviewService_SelectForReviewDefaultsFromSettings(t *testing.T) {
	f := newReviewFixture(11)
	f.seedStale(8)
	f.settings.settings = &domain.Settings{ID: "settings-1", DailyReviewCount: 3}

	got, err := f.svc.SelectForReview(0, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected the settings target of 3, got %d", len(got))
	}
}

func TestReviewService_SelectForReviewExplicitCount(t *testing.T) {
	f := newReviewFixture(12)
	f.seedStale(8)

	got, err := f.svc.SelectForReview(6, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 highlights, got %d", len(got))
	}
}

func TestReviewService_AdvanceMatchesSubsequentCurrent(t *testing.T) {
	f := newReviewFixture(13)
	f.seedStale(5)

	current, _ := f.svc.Current("", false, reviewNow)
	adv, err := f.svc.Advance(current.SessionToken, current.Item.ID, domain.ActionReviewed, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	again, _ := f.svc.Current(current.SessionToken, false, reviewNow)
	if again.Item.ID != adv.NextItem.ID || again.Position != adv.Position {
		t.Fatalf("expected Current to agree with the last Advance: %+v vs %+v", again, adv)
	}
}

func TestReviewService_DeletedHighlightIsSkipped(t *testing.T) {
	f := newReviewFixture(14)
	f.seedStale(5)

	current, _ := f.svc.Current("", false, reviewNow)
	adv, _ := f.svc.Advance(current.SessionToken, current.Item.ID, domain.ActionReviewed, reviewNow)

	// Remove the next card out-of-band; get-current must skip past it.
	if err := f.highlights.Delete(adv.NextItem.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	again, err := f.svc.Current(current.SessionToken, false, reviewNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if again.Item != nil && again.Item.ID == adv.NextItem.ID {
		t.Fatalf("expected the deleted highlight to be skipped")
	}
	if again.Position != adv.Position+1 {
		t.Fatalf("expected position %d after skipping, got %d", adv.Position+1, again.Position)
	}
}
