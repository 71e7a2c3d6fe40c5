package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storekeeper/internal/domain"
	"storekeeper/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCategoryCreateAndGet(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)

	created, err := cats.Create("Radios")
	require.NoError(t, err)
	assert.True(t, created.ID > 0)

	got, err := cats.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = cats.ByID(created.ID + 100)
	assert.ErrorIs(t, err, repos.ErrCategoryNotFound)
}

func TestCategoryListInsertionOrder(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		_, err := cats.Create(name)
		require.NoError(t, err)
	}
	out, err := cats.List()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Zeta", out[0].Name)
	assert.Equal(t, "Alpha", out[1].Name)
	assert.Equal(t, "Mid", out[2].Name)
}

func TestIDsNeverReused(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)

	first, err := cats.Create("Gone soon")
	require.NoError(t, err)
	require.NoError(t, cats.DeleteCascade(first.ID))

	second, err := cats.Create("Next")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestProductCreateRequiresCategory(t *testing.T) {
	db := memdb(t)
	prods := repos.NewProductRepo(db)

	_, err := prods.Create("Widget", "A widget", 999)
	assert.ErrorIs(t, err, repos.ErrCategoryNotFound)

	all, err := prods.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductRoundTrip(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	cat, err := cats.Create("Widgets")
	require.NoError(t, err)

	created, err := prods.Create("Widget", "A widget", cat.ID)
	require.NoError(t, err)

	got, err := prods.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Product{ID: created.ID, Name: "Widget", Desc: "A widget", CategoryID: cat.ID}, got)
}

func TestListByCategory(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	a, _ := cats.Create("A")
	b, _ := cats.Create("B")
	_, err := prods.Create("P1", "in A", a.ID)
	require.NoError(t, err)
	_, err = prods.Create("P2", "in B", b.ID)
	require.NoError(t, err)
	_, err = prods.Create("P3", "in A", a.ID)
	require.NoError(t, err)

	inA, err := prods.ListByCategory(a.ID)
	require.NoError(t, err)
	require.Len(t, inA, 2)
	assert.Equal(t, "P1", inA[0].Name)
	assert.Equal(t, "P3", inA[1].Name)

	// Unknown category: empty list, not an error.
	none, err := prods.ListByCategory(999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteCascadeRemovesAllProducts(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	keep, _ := cats.Create("Keep")
	doomed, _ := cats.Create("Doomed")

	kept, err := prods.Create("Survivor", "stays", keep.ID)
	require.NoError(t, err)
	var doomedIDs []int64
	for _, name := range []string{"D1", "D2", "D3"} {
		p, err := prods.Create(name, "goes", doomed.ID)
		require.NoError(t, err)
		doomedIDs = append(doomedIDs, p.ID)
	}

	require.NoError(t, cats.DeleteCascade(doomed.ID))

	_, err = cats.ByID(doomed.ID)
	assert.ErrorIs(t, err, repos.ErrCategoryNotFound)
	for _, id := range doomedIDs {
		_, err := prods.ByID(id)
		assert.ErrorIs(t, err, repos.ErrProductNotFound)
	}

	// The other category's product is untouched.
	_, err = prods.ByID(kept.ID)
	assert.NoError(t, err)
}

func TestDeleteAbsentIsNotFound(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	assert.ErrorIs(t, cats.DeleteCascade(42), repos.ErrCategoryNotFound)
	assert.ErrorIs(t, prods.Delete(42), repos.ErrProductNotFound)

	// Deleting twice: second call reports absence, nothing breaks.
	cat, _ := cats.Create("Once")
	require.NoError(t, cats.DeleteCascade(cat.ID))
	assert.ErrorIs(t, cats.DeleteCascade(cat.ID), repos.ErrCategoryNotFound)
}

func TestProductUpdatePartial(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	cat, _ := cats.Create("Widgets")
	p, err := prods.Create("Widget", "old desc", cat.ID)
	require.NoError(t, err)

	newDesc := "new desc"
	require.NoError(t, prods.Update(p.ID, domain.ProductPatch{Desc: &newDesc}))

	got, err := prods.ByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "new desc", got.Desc)
	assert.Equal(t, cat.ID, got.CategoryID)
}

func TestProductUpdateMissingTargets(t *testing.T) {
	db := memdb(t)
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	name := "New name"
	assert.ErrorIs(t, prods.Update(42, domain.ProductPatch{Name: &name}), repos.ErrProductNotFound)

	cat, _ := cats.Create("Widgets")
	p, _ := prods.Create("Widget", "desc", cat.ID)

	bogus := int64(999)
	err := prods.Update(p.ID, domain.ProductPatch{Name: &name, CategoryID: &bogus})
	assert.ErrorIs(t, err, repos.ErrCategoryNotFound)

	// Nothing from the failed patch was applied.
	got, err := prods.ByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, cat.ID, got.CategoryID)
}
