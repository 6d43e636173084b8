package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
)

// --- Mocks ---

type mockRepo struct {
	created    domain.Collection
	upserted   []domain.Collection
	getResult  domain.Collection
	listResult []domain.Collection
	createErr  error
	upsertErr  error
	getErr     error
	listErr    error
	deleteErr  error
}

func (m *mockRepo) Create(_ context.Context, col domain.Collection) error {
	m.created = col
	return m.createErr
}

func (m *mockRepo) Upsert(_ context.Context, col domain.Collection) error {
	m.upserted = append(m.upserted, col)
	return m.upsertErr
}

func (m *mockRepo) Get(_ context.Context, _ string) (domain.Collection, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) List(_ context.Context) ([]domain.Collection, error) {
	return m.listResult, m.listErr
}

func (m *mockRepo) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

type mockSource struct {
	collections []searchiq.Collection
	err         error
}

func (m *mockSource) Collections(_ context.Context) ([]searchiq.Collection, error) {
	return m.collections, m.err
}

func makeCollection(t *testing.T, handle, title string) domain.Collection {
	t.Helper()
	col, err := domain.New(handle, title)
	if err != nil {
		t.Fatalf("domain.New: %v", err)
	}
	return col
}

// --- Tests ---

func TestNormalize(t *testing.T) {
	svc := New(&mockRepo{}, nil)

	result := svc.Normalize("Waterproof Laminate!!", "en")
	if result.Normalized != " laminate waterproof" {
		t.Errorf("expected ' laminate waterproof', got %q", result.Normalized)
	}
	if result.Handle != "laminate-waterproof" {
		t.Errorf("expected handle 'laminate-waterproof', got %q", result.Handle)
	}
	if !result.ShouldCreateCollection {
		t.Errorf("expected collection recommendation, score %v", result.QualityScore)
	}
}

func TestNormalize_Spam(t *testing.T) {
	svc := New(&mockRepo{}, nil)

	result := svc.Normalize("aaaaaaaa", "en")
	if !result.IsSpam {
		t.Error("expected spam verdict")
	}
	if result.ShouldCreateCollection {
		t.Error("spam must never recommend a collection")
	}
}

func TestNormalizeBatch(t *testing.T) {
	svc := New(&mockRepo{}, nil)

	result := svc.NormalizeBatch([]string{
		"waterproof laminate",
		"laminate waterproof!",
		"oak parquet",
	}, "en")

	if result.Total != 3 {
		t.Errorf("expected total 3, got %d", result.Total)
	}
	if result.Unique != 2 {
		t.Errorf("expected 2 unique groups, got %d", result.Unique)
	}
	if result.Duplicates != 1 {
		t.Errorf("expected 1 duplicate, got %d", result.Duplicates)
	}
}

func TestResolve_ExactMatch(t *testing.T) {
	repo := &mockRepo{listResult: []domain.Collection{
		makeCollection(t, "vinyl-tile", "Vinyl Tile"),
		makeCollection(t, "laminate-waterproof", "Waterproof Laminate"),
	}}
	svc := New(repo, nil)

	normalized, match, err := svc.Resolve(context.Background(), "Waterproof Laminate", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.Handle != "laminate-waterproof" {
		t.Errorf("unexpected handle %q", normalized.Handle)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.MatchType != searchiq.MatchExact {
		t.Errorf("expected exact match, got %q", match.MatchType)
	}
	if match.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", match.Confidence)
	}
	if match.Collection.Handle() != "laminate-waterproof" {
		t.Errorf("unexpected collection %q", match.Collection.Handle())
	}
}

func TestResolve_NoMatchRecommendsCreation(t *testing.T) {
	repo := &mockRepo{listResult: []domain.Collection{
		makeCollection(t, "vinyl-tile", "Vinyl Tile"),
	}}
	svc := New(repo, nil)

	normalized, match, err := svc.Resolve(context.Background(), "waterproof kitchen floor", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match != nil {
		t.Fatalf("expected no match, got %+v", match)
	}
	if !normalized.ShouldCreateCollection {
		t.Errorf("expected creation recommendation, score %v", normalized.QualityScore)
	}
}

func TestResolve_ListError(t *testing.T) {
	repo := &mockRepo{listErr: errors.New("redis down")}
	svc := New(repo, nil)

	_, _, err := svc.Resolve(context.Background(), "oak laminate", "en")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRegister_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, nil)

	col, err := svc.Register(context.Background(), "oak-laminate", "Oak Laminate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.Handle() != "oak-laminate" {
		t.Errorf("expected handle 'oak-laminate', got %q", col.Handle())
	}
	if repo.created.Handle() != "oak-laminate" {
		t.Errorf("expected repo create, got %q", repo.created.Handle())
	}
}

func TestRegister_InvalidHandle(t *testing.T) {
	svc := New(&mockRepo{}, nil)

	_, err := svc.Register(context.Background(), "Oak Laminate", "Oak Laminate")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	repo := &mockRepo{createErr: domain.ErrAlreadyExists}
	svc := New(repo, nil)

	_, err := svc.Register(context.Background(), "oak-laminate", "Oak Laminate")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: domain.ErrNotFound}
	svc := New(repo, nil)

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := New(&mockRepo{}, nil)

	if err := svc.Delete(context.Background(), "oak-laminate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSync_RegistersNewCollections(t *testing.T) {
	repo := &mockRepo{}
	source := &mockSource{collections: []searchiq.Collection{
		{Handle: "oak-laminate", Title: "Oak Laminate"},
		{Handle: "vinyl-kitchen", Title: "Kitchen Vinyl"},
	}}
	svc := New(repo, source)

	synced, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 2 {
		t.Errorf("expected 2 synced, got %d", synced)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(repo.upserted))
	}
	if h := repo.upserted[0].Handle(); h != "oak-laminate" {
		t.Errorf("expected handle 'oak-laminate', got %q", h)
	}
	if rev := repo.upserted[0].Revision(); rev != 1 {
		t.Errorf("expected revision 1, got %d", rev)
	}
}

func TestSync_BumpsRevisionOnTitleChange(t *testing.T) {
	existing := makeCollection(t, "oak-laminate", "Oak")
	repo := &mockRepo{listResult: []domain.Collection{existing}}
	source := &mockSource{collections: []searchiq.Collection{
		{Handle: "oak-laminate", Title: "Oak Laminate"},
	}}
	svc := New(repo, source)

	synced, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 1 {
		t.Fatalf("expected 1 synced, got %d", synced)
	}
	got := repo.upserted[0]
	if got.Title() != "Oak Laminate" {
		t.Errorf("expected updated title, got %q", got.Title())
	}
	if got.Revision() != existing.Revision()+1 {
		t.Errorf("expected revision %d, got %d", existing.Revision()+1, got.Revision())
	}
	if got.CreatedAt() != existing.CreatedAt() {
		t.Errorf("creation time must survive a title change")
	}
}

func TestSync_SkipsUnchanged(t *testing.T) {
	existing := makeCollection(t, "oak-laminate", "Oak Laminate")
	repo := &mockRepo{listResult: []domain.Collection{existing}}
	source := &mockSource{collections: []searchiq.Collection{
		{Handle: "oak-laminate", Title: "Oak Laminate"},
	}}
	svc := New(repo, source)

	synced, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 0 || len(repo.upserted) != 0 {
		t.Errorf("expected no writes, got synced=%d upserts=%d", synced, len(repo.upserted))
	}
}

func TestSync_SkipsMalformedHandles(t *testing.T) {
	repo := &mockRepo{}
	source := &mockSource{collections: []searchiq.Collection{
		{Handle: "Bad_Handle", Title: "Bad"},
		{Handle: "oak-laminate", Title: "Oak Laminate"},
	}}
	svc := New(repo, source)

	synced, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 1 {
		t.Errorf("expected 1 synced, got %d", synced)
	}
}

func TestSync_SourceError(t *testing.T) {
	repo := &mockRepo{}
	source := &mockSource{err: domain.ErrSourceUnavailable}
	svc := New(repo, source)

	_, err := svc.Sync(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestSync_NoSource(t *testing.T) {
	svc := New(&mockRepo{}, nil)

	_, err := svc.Sync(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
