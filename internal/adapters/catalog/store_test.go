package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scitex.ch/vessel/internal/adapters/catalog"
	"go.scitex.ch/vessel/internal/core/domain"
)

func testVersion(id string, created time.Time) domain.Version {
	return domain.Version{
		ID:           id,
		ArtifactPath: "/containers/" + id + ".sif",
		CreatedAt:    created,
		ArtifactHash: "00000000deadbeef",
	}
}

func TestStore_Load_FirstRun(t *testing.T) {
	store := catalog.NewStore(t.TempDir())

	cat, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cat.Versions)
	assert.Empty(t, cat.Active)
	assert.Equal(t, domain.CatalogSchema, cat.Schema)
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := catalog.NewStore(dir)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cat := domain.NewCatalog()
	cat.Versions["v1.0.0"] = testVersion("v1.0.0", created)
	cat.Versions["v1.1.0"] = testVersion("v1.1.0", created.Add(time.Hour))
	cat.Active = "v1.1.0"
	cat.Previous = "v1.0.0"

	require.NoError(t, store.Save(cat))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cat.Active, loaded.Active)
	assert.Equal(t, cat.Previous, loaded.Previous)
	require.Len(t, loaded.Versions, 2)
	assert.True(t, loaded.Versions["v1.0.0"].CreatedAt.Equal(created))

	// No temp file left behind after a successful save.
	_, err = os.Stat(domain.CatalogPath(dir) + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Load_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.CatalogPath(dir), []byte("{not json"), 0o644))

	_, err := catalog.NewStore(dir).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogReadFailed)
}

func TestStore_Load_NewerSchemaRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.CatalogPath(dir), []byte(`{"schema": 99, "versions": {}}`), 0o644))

	_, err := catalog.NewStore(dir).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedSchema.Error())
}

func TestStore_Save_RejectsDanglingPointer(t *testing.T) {
	store := catalog.NewStore(t.TempDir())

	cat := domain.NewCatalog()
	cat.Active = "ghost"

	err := store.Save(cat)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCatalogInvariant.Error())
}

func TestStore_Register(t *testing.T) {
	store := catalog.NewStore(t.TempDir())
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Register(testVersion("v1.0.0", created)))

	t.Run("duplicate id rejected", func(t *testing.T) {
		err := store.Register(testVersion("v1.0.0", created.Add(time.Hour)))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrDuplicateVersion.Error())
	})

	cat, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, cat.Versions, 1)
}

func TestStore_Remove(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) *catalog.Store {
		t.Helper()
		store := catalog.NewStore(t.TempDir())
		cat := domain.NewCatalog()
		cat.Versions["v1"] = testVersion("v1", created)
		cat.Versions["v2"] = testVersion("v2", created.Add(time.Hour))
		cat.Versions["v3"] = testVersion("v3", created.Add(2*time.Hour))
		cat.Active = "v3"
		cat.Previous = "v2"
		require.NoError(t, store.Save(cat))
		return store
	}

	t.Run("unknown id", func(t *testing.T) {
		err := setup(t).Remove("ghost")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownVersion.Error())
	})

	t.Run("active version refused", func(t *testing.T) {
		err := setup(t).Remove("v3")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrActiveVersionRemoval.Error())
	})

	t.Run("plain version removed", func(t *testing.T) {
		store := setup(t)
		require.NoError(t, store.Remove("v1"))

		cat, err := store.Load()
		require.NoError(t, err)
		_, ok := cat.Get("v1")
		assert.False(t, ok)
		assert.Equal(t, "v2", cat.Previous)
	})

	t.Run("removing previous clears the pointer", func(t *testing.T) {
		store := setup(t)
		require.NoError(t, store.Remove("v2"))

		cat, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, cat.Previous)
		assert.Equal(t, "v3", cat.Active)
	})
}

func TestStore_Save_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "containers")
	store := catalog.NewStore(dir)

	require.NoError(t, store.Save(domain.NewCatalog()))

	_, err := os.Stat(domain.CatalogPath(dir))
	require.NoError(t, err)
}
