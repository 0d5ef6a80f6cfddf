package documents

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *MemoryRepository {
	t.Helper()
	n := 0
	return NewMemoryRepository(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func(time.Time) string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	)
}

func TestCreateOrUpdate_NoID_GeneratesAndDefaults(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	saved, err := r.CreateOrUpdate(ctx, models.DocumentPatch{
		Title:    models.Ptr("Invoice #1234"),
		Category: models.Ptr("Invoices"),
	})
	require.NoError(t, err)

	assert.Equal(t, "gen-1", saved.ID)
	assert.Equal(t, "2024-01-01", saved.Date)
	assert.Equal(t, "2024-01-01", saved.LastViewed)
	assert.Equal(t, "Invoices", saved.Category)
	assert.Equal(t, []string{}, saved.Tags)

	got, err := r.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(saved, *got))
}

func TestCreateOrUpdate_DefaultGeneratorFormat(t *testing.T) {
	r := NewMemoryRepository(WithClock(func() time.Time { return fixedNow }))

	saved, err := r.CreateOrUpdate(context.Background(), models.DocumentPatch{})
	require.NoError(t, err)

	want := fmt.Sprintf(`^doc-%d-[0-9a-f]{9}$`, fixedNow.UnixMilli())
	assert.Regexp(t, regexp.MustCompile(want), saved.ID)
	assert.Equal(t, models.DefaultTitle, saved.Title)
	assert.Equal(t, models.DefaultCategory, saved.Category)
}

func TestCreateOrUpdate_GeneratedIDsAreUnique(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	seen := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		d, err := r.CreateOrUpdate(ctx, models.DocumentPatch{})
		require.NoError(t, err)
		_, dup := seen[d.ID]
		require.False(t, dup, "duplicate id %s", d.ID)
		seen[d.ID] = struct{}{}
	}
}

func TestCreateOrUpdate_SkipsCollidingGeneratedID(t *testing.T) {
	ids := []string{"same", "same", "other"}
	r := NewMemoryRepository(WithIDGenerator(func(time.Time) string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))
	ctx := context.Background()

	a, err := r.CreateOrUpdate(ctx, models.DocumentPatch{})
	require.NoError(t, err)
	b, err := r.CreateOrUpdate(ctx, models.DocumentPatch{})
	require.NoError(t, err)

	assert.Equal(t, "same", a.ID)
	assert.Equal(t, "other", b.ID)
}

func TestCreateOrUpdate_MergeLaw(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	orig, err := r.CreateOrUpdate(ctx, models.DocumentPatch{
		Title:    models.Ptr("a"),
		Category: models.Ptr("b"),
		Notes:    models.Ptr("c"),
		Tags:     []string{"t1"},
	})
	require.NoError(t, err)

	merged, err := r.CreateOrUpdate(ctx, models.DocumentPatch{ID: orig.ID, Category: models.Ptr("newB")})
	require.NoError(t, err)

	assert.Equal(t, "a", merged.Title)
	assert.Equal(t, "newB", merged.Category)
	assert.Equal(t, "c", merged.Notes)
	assert.Equal(t, []string{"t1"}, merged.Tags)
	assert.Equal(t, orig.Date, merged.Date)

	stored, err := r.GetByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(merged, *stored))
}

func TestCreateOrUpdate_UnknownIDInsertedWithCallerID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	saved, err := r.CreateOrUpdate(ctx, models.DocumentPatch{ID: "new-1700000000000", Title: models.Ptr("New Scan")})
	require.NoError(t, err)
	assert.Equal(t, "new-1700000000000", saved.ID)
	assert.Equal(t, models.DefaultCategory, saved.Category)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCreateOrUpdate_UpdateKeepsPosition(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("a")})
	b, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("b")})
	_, err := r.CreateOrUpdate(ctx, models.DocumentPatch{ID: a.ID, Title: models.Ptr("a2")})
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, "a2", all[0].Title)
	assert.Equal(t, b.ID, all[1].ID)
}

func TestCreateOrUpdate_LastViewedOnlyFromPatch(t *testing.T) {
	day := fixedNow
	r := NewMemoryRepository(WithClock(func() time.Time { return day }))
	ctx := context.Background()

	d, err := r.CreateOrUpdate(ctx, models.DocumentPatch{})
	require.NoError(t, err)

	day = fixedNow.AddDate(0, 0, 10)
	_, err = r.GetByID(ctx, d.ID)
	require.NoError(t, err)
	updated, err := r.CreateOrUpdate(ctx, models.DocumentPatch{ID: d.ID, Title: models.Ptr("x")})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", updated.LastViewed)
}

func TestCreate_RejectsTakenID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.Create(ctx, models.DocumentPatch{ID: "new-1", Preview: models.Ptr("file:///a.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "new-1", first.ID)

	_, err = r.Create(ctx, models.DocumentPatch{ID: "new-1", Preview: models.Ptr("file:///b.jpg")})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetByID(ctx, "new-1")
	require.NoError(t, err)
	assert.Equal(t, "file:///a.jpg", got.Preview)

	generated, err := r.Create(ctx, models.DocumentPatch{})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", generated.ID)
	assert.Equal(t, models.DefaultTitle, generated.Title)
}

func TestGetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.GetByID(context.Background(), "never-saved")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Nil(t, got)
}

func TestDeleteByID_IdempotentAndUnknownIsNoop(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	d, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{})
	keep, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{})

	require.NoError(t, r.DeleteByID(ctx, d.ID))
	once, _ := r.GetAll(ctx)

	require.NoError(t, r.DeleteByID(ctx, d.ID))
	twice, _ := r.GetAll(ctx)
	assert.Equal(t, once, twice)

	require.NoError(t, r.DeleteByID(ctx, "missing"))
	all, _ := r.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestGetAll_SurvivorsKeepInsertionOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	r1, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("r1")})
	r2, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("r2")})
	require.NoError(t, r.DeleteByID(ctx, r1.ID))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, cmp.Diff(r2, all[0]))

	r3, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("r3")})
	all, _ = r.GetAll(ctx)
	assert.Equal(t, []string{r2.ID, r3.ID}, []string{all[0].ID, all[1].ID})
}

func TestGetAll_EmptyStoreReturnsEmptySlice(t *testing.T) {
	all, err := newTestRepo(t).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestReads_ReturnIndependentCopies(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	saved, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr("t"), Tags: []string{"a"}})
	saved.Tags[0] = "mutated-return"

	one, _ := r.GetByID(ctx, saved.ID)
	one.Title = "mutated"
	one.Tags[0] = "mutated"

	all, _ := r.GetAll(ctx)
	all[0].Tags[0] = "mutated-all"

	stored, _ := r.GetByID(ctx, saved.ID)
	assert.Equal(t, "t", stored.Title)
	assert.Equal(t, []string{"a"}, stored.Tags)
}

func TestCreateOrUpdate_PatchSliceNotAliased(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	tags := []string{"a", "a"}
	saved, _ := r.CreateOrUpdate(ctx, models.DocumentPatch{Tags: tags})
	tags[0] = "changed"

	stored, _ := r.GetByID(ctx, saved.ID)
	assert.Equal(t, []string{"a", "a"}, stored.Tags, "duplicates are kept and input is copied")
}

func TestMemoryRepository_ConcurrentUse(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := r.CreateOrUpdate(ctx, models.DocumentPatch{Title: models.Ptr(fmt.Sprint(i))})
			assert.NoError(t, err)
			_, _ = r.GetAll(ctx)
			_, err = r.CreateOrUpdate(ctx, models.DocumentPatch{ID: d.ID, Notes: models.Ptr("n")})
			assert.NoError(t, err)
			if i%2 == 0 {
				assert.NoError(t, r.DeleteByID(ctx, d.ID))
			}
		}(i)
	}
	wg.Wait()

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)
	for _, d := range all {
		assert.Equal(t, "n", d.Notes)
	}
}

func TestMemoryRepository_ImplementsRepository(t *testing.T) {
	var _ Repository = NewMemoryRepository()
}
