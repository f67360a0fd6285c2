package diary

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-behavior-diary/internal/domain/observations"
	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/domain/timewindow"
	"pet-behavior-diary/internal/ports/generation"
)

// -------------------------
// Stubs (in-memory)
// -------------------------

type stubEntries struct {
	byKey map[string]Entry

	getCalls    int
	upsertCalls int
	deleteCalls int

	getErr    error
	upsertErr error
}

func newStubEntries() *stubEntries {
	return &stubEntries{byKey: map[string]Entry{}}
}

func entryKey(owner, pet string, date timewindow.Date) string {
	return owner + "|" + pet + "|" + date.String()
}

func (s *stubEntries) GetByDate(ctx context.Context, owner, pet string, date timewindow.Date) (Entry, error) {
	s.getCalls++
	if s.getErr != nil {
		return Entry{}, s.getErr
	}
	e, ok := s.byKey[entryKey(owner, pet, date)]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (s *stubEntries) Upsert(ctx context.Context, e Entry) error {
	s.upsertCalls++
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.byKey[entryKey(e.OwnerUserID, e.PetID, e.DiaryDate)] = e
	return nil
}

func (s *stubEntries) DeleteByDate(ctx context.Context, owner, pet string, date timewindow.Date) error {
	s.deleteCalls++
	delete(s.byKey, entryKey(owner, pet, date))
	return nil
}

type stubObs struct {
	recs       []observations.Record
	calls      int
	lastWindow timewindow.Window
}

func (s *stubObs) ListWindow(ctx context.Context, owner, pet string, w timewindow.Window) []observations.Record {
	s.calls++
	s.lastWindow = w
	return s.recs
}

type stubProfiles struct {
	pet pets.Pet
	err error
}

func (s *stubProfiles) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if s.err != nil {
		return pets.Pet{}, s.err
	}
	return s.pet, nil
}

type stubGateway struct {
	resp       string
	err        error
	calls      int
	lastPrompt string
}

func (g *stubGateway) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.resp, nil
}

// -------------------------
// Helpers
// -------------------------

// "Hoy" fijo para los tests: 2024-06-10 en +09:00.
var fixedNow = time.Date(2024, time.June, 10, 12, 0, 0, 0, kst)

func dateAt(y int, m time.Month, d int) timewindow.Date {
	return timewindow.Date{Year: y, Month: m, Day: d}
}

var (
	today     = dateAt(2024, time.June, 10)
	yesterday = dateAt(2024, time.June, 9)
	tomorrow  = dateAt(2024, time.June, 11)
)

// Observaciones de hoy (10:00 hora local).
func todayRecords() []observations.Record {
	return []observations.Record{
		{ID: "o1", OwnerUserID: "u1", PetID: "d1", Category: observations.CategorySound, PositiveScore: 0.8, ActiveScore: 0.6, CreatedAt: "2024-06-10T01:00:00Z"},
	}
}

func newTestService(entries *stubEntries, obs *stubObs, gw generation.Gateway) *Service {
	svc := NewService(entries, obs, &stubProfiles{pet: pets.Pet{ID: "d1", OwnerUserID: "u1", Name: "Milo", Species: "dog"}}, gw, kst, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestGet_PastEmpty_NeverGenerates(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "should not be called"}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", yesterday, false)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Status != StatusPastEmpty {
		t.Fatalf("expected past_empty, got %s", res.Status)
	}
	if res.Content != DefaultMessages().PastEmpty {
		t.Fatalf("expected past placeholder, got %q", res.Content)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway must not be called for past days, got %d calls", gw.calls)
	}
	if obs.calls != 0 {
		t.Fatalf("observation window must not be queried for past days")
	}
}

func TestGet_FutureEmpty_NeverTouchesObservations(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", tomorrow, false)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Status != StatusFutureEmpty {
		t.Fatalf("expected future_empty, got %s", res.Status)
	}
	if res.Content != DefaultMessages().FutureEmpty {
		t.Fatalf("expected future placeholder, got %q", res.Content)
	}
	if obs.calls != 0 || gw.calls != 0 {
		t.Fatalf("future dates must not read observations nor generate")
	}
}

func TestGet_TodayEmpty_NoGenerationNoPersist(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{} // sin observaciones hoy
	gw := &stubGateway{}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Status != StatusTodayEmpty {
		t.Fatalf("expected today_empty, got %s", res.Status)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway must not be called without context")
	}
	if entries.upsertCalls != 0 {
		t.Fatalf("nothing must be persisted for today_empty")
	}
}

func TestGet_CreatedThenExists_SingleGatewayCall(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "Dear diary, what a day!"}
	svc := newTestService(entries, obs, gw)

	first, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err != nil {
		t.Fatalf("Get #1 error: %v", err)
	}
	if first.Status != StatusCreated {
		t.Fatalf("expected created, got %s", first.Status)
	}
	if first.Content != "Dear diary, what a day!" {
		t.Fatalf("unexpected content %q", first.Content)
	}
	if entries.upsertCalls != 1 {
		t.Fatalf("expected one upsert, got %d", entries.upsertCalls)
	}

	second, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err != nil {
		t.Fatalf("Get #2 error: %v", err)
	}
	if second.Status != StatusExists {
		t.Fatalf("expected exists on second read, got %s", second.Status)
	}
	if second.Content != first.Content {
		t.Fatalf("cached content must be identical")
	}
	if gw.calls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", gw.calls)
	}
}

func TestGet_ExistingEntryWinsOverRecomputation(t *testing.T) {
	entries := newStubEntries()
	entries.byKey[entryKey("u1", "d1", today)] = Entry{
		ID: "e1", OwnerUserID: "u1", PetID: "d1", DiaryDate: today, Content: "stale but persisted",
	}
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "fresh"}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Status != StatusExists || res.Content != "stale but persisted" {
		t.Fatalf("persisted entry must win, got %s %q", res.Status, res.Content)
	}
	if gw.calls != 0 || obs.calls != 0 {
		t.Fatalf("no recomputation allowed when an entry exists")
	}
}

func TestGet_RegenerateNonToday_RejectedBeforeStoreAccess(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{}
	svc := newTestService(entries, obs, gw)

	_, err := svc.Get(context.Background(), "u1", "d1", yesterday, true)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if entries.getCalls != 0 || entries.deleteCalls != 0 || entries.upsertCalls != 0 {
		t.Fatalf("store must not be touched for an invalid regenerate")
	}
	if obs.calls != 0 || gw.calls != 0 {
		t.Fatalf("neither observations nor gateway may run for an invalid regenerate")
	}
}

func TestGet_RegenerateToday_DeletesAndRecreates(t *testing.T) {
	entries := newStubEntries()
	entries.byKey[entryKey("u1", "d1", today)] = Entry{
		ID: "e1", OwnerUserID: "u1", PetID: "d1", DiaryDate: today, Content: "old version",
	}
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "new version"}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", today, true)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Status != StatusRegenerated {
		t.Fatalf("expected regenerated, got %s", res.Status)
	}
	if res.Content != "new version" {
		t.Fatalf("expected regenerated content, got %q", res.Content)
	}
	if entries.deleteCalls != 1 {
		t.Fatalf("expected one delete before regenerate, got %d", entries.deleteCalls)
	}

	stored := entries.byKey[entryKey("u1", "d1", today)]
	if stored.Content != "new version" {
		t.Fatalf("expected new content persisted, got %q", stored.Content)
	}
}

func TestGet_GatewayFailure_IsTerminal(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{err: fmt.Errorf("model timeout")}
	svc := newTestService(entries, obs, gw)

	_, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err == nil {
		t.Fatalf("expected terminal error from gateway failure")
	}
	if entries.upsertCalls != 0 {
		t.Fatalf("no partial content may be persisted on gateway failure")
	}
	if gw.calls != 1 {
		t.Fatalf("expected single attempt, no retry, got %d", gw.calls)
	}
}

func TestGet_NilGateway_Unavailable(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	svc := newTestService(entries, obs, nil)

	_, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if !errors.Is(err, generation.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGet_UpsertFailure_SwallowedContentReturned(t *testing.T) {
	entries := newStubEntries()
	entries.upsertErr = fmt.Errorf("db down")
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "still yours"}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err != nil {
		t.Fatalf("upsert failure must not surface: %v", err)
	}
	if res.Status != StatusCreated || res.Content != "still yours" {
		t.Fatalf("expected created content despite failed persist, got %s %q", res.Status, res.Content)
	}
}

func TestGet_ReadFailure_TreatedAsAbsent(t *testing.T) {
	entries := newStubEntries()
	entries.getErr = fmt.Errorf("connection reset")
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "recovered"}
	svc := newTestService(entries, obs, gw)

	res, err := svc.Get(context.Background(), "u1", "d1", today, false)
	if err != nil {
		t.Fatalf("read failure must degrade, not surface: %v", err)
	}
	if res.Status != StatusCreated {
		t.Fatalf("expected created after degraded read, got %s", res.Status)
	}
}

func TestGet_QueriesTheDayWindowOfTheRequestedDate(t *testing.T) {
	entries := newStubEntries()
	obs := &stubObs{recs: todayRecords()}
	gw := &stubGateway{resp: "ok"}
	svc := newTestService(entries, obs, gw)

	if _, err := svc.Get(context.Background(), "u1", "d1", today, false); err != nil {
		t.Fatalf("Get error: %v", err)
	}

	want := timewindow.DayRangeUTC(today, kst)
	if !obs.lastWindow.Start.Equal(want.Start) || !obs.lastWindow.End.Equal(want.End) {
		t.Fatalf("expected window %v, got %v", want, obs.lastWindow)
	}
}

func TestGet_MissingIdentifiers(t *testing.T) {
	svc := newTestService(newStubEntries(), &stubObs{}, &stubGateway{})

	if _, err := svc.Get(context.Background(), "", "d1", today, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty owner, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "u1", "  ", today, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty pet, got %v", err)
	}
}
