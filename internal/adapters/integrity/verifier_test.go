package integrity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scitex.ch/vessel/internal/adapters/integrity"
	"go.scitex.ch/vessel/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	v := integrity.NewVerifier()

	path := writeFile(t, dir, "artifact.sif", "image bytes")

	h1, err := v.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Len(t, h1, 16)

	t.Run("deterministic", func(t *testing.T) {
		h2, err := v.ComputeFileHash(path)
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
	})

	t.Run("content only", func(t *testing.T) {
		other := writeFile(t, dir, "copy.sif", "image bytes")
		h2, err := v.ComputeFileHash(other)
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
	})

	t.Run("different content differs", func(t *testing.T) {
		other := writeFile(t, dir, "other.sif", "different bytes")
		h2, err := v.ComputeFileHash(other)
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := v.ComputeFileHash(filepath.Join(dir, "absent"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
	})
}

// registerVersion builds a version whose recorded hashes match the files
// currently on disk.
func registerVersion(t *testing.T, dir string) domain.Version {
	t.Helper()
	v := integrity.NewVerifier()

	artifact := writeFile(t, dir, "env_v1.sif", "sif content")
	def := writeFile(t, dir, "env.def", "Bootstrap: docker")
	writeFile(t, dir, "requirements.lock", "numpy==2.1.0")

	artifactHash, err := v.ComputeFileHash(artifact)
	require.NoError(t, err)
	defHash, err := v.ComputeFileHash(def)
	require.NoError(t, err)
	lockHash, err := v.ComputeFileHash(filepath.Join(dir, "requirements.lock"))
	require.NoError(t, err)

	return domain.Version{
		ID:            "v1.0.0",
		ArtifactPath:  artifact,
		ArtifactHash:  artifactHash,
		DefPath:       def,
		DefOriginHash: defHash,
		LockHashes:    map[string]string{"requirements.lock": lockHash},
	}
}

func TestVerify_AllPass(t *testing.T) {
	dir := t.TempDir()
	ver := registerVersion(t, dir)

	result := integrity.NewVerifier().Verify(ver)
	assert.True(t, result.Overall)
	assert.Equal(t, domain.CheckPass, result.Artifact.Status)
	assert.Equal(t, domain.CheckPass, result.DefOrigin.Status)
	assert.Equal(t, domain.CheckPass, result.Locks["requirements.lock"].Status)
}

func TestVerify_MissingLockFileFailsField(t *testing.T) {
	dir := t.TempDir()
	ver := registerVersion(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "requirements.lock")))

	result := integrity.NewVerifier().Verify(ver)

	// The run completes with a per-field failure rather than aborting.
	assert.False(t, result.Overall)
	assert.Equal(t, domain.CheckPass, result.Artifact.Status)
	assert.Equal(t, domain.CheckFail, result.Locks["requirements.lock"].Status)
	assert.Contains(t, result.Locks["requirements.lock"].Detail, "missing")
}

func TestVerify_ModifiedDefinitionFails(t *testing.T) {
	dir := t.TempDir()
	ver := registerVersion(t, dir)
	writeFile(t, dir, "env.def", "Bootstrap: docker\n%post\napt update")

	result := integrity.NewVerifier().Verify(ver)
	assert.False(t, result.Overall)
	assert.Equal(t, domain.CheckFail, result.DefOrigin.Status)
	assert.Contains(t, result.DefOrigin.Detail, "hash mismatch")
}

func TestVerify_NothingRecordedSkips(t *testing.T) {
	dir := t.TempDir()
	artifact := writeFile(t, dir, "bare.sif", "sif content")

	ver := domain.Version{ID: "v0.0.1", ArtifactPath: artifact}
	result := integrity.NewVerifier().Verify(ver)

	assert.True(t, result.Overall)
	assert.Equal(t, domain.CheckSkip, result.Artifact.Status)
	assert.Equal(t, domain.CheckSkip, result.DefOrigin.Status)
	assert.Empty(t, result.Locks)
}

func TestVerifyDefOrigin(t *testing.T) {
	t.Run("matching definition passes", func(t *testing.T) {
		dir := t.TempDir()
		ver := registerVersion(t, dir)

		check := integrity.NewVerifier().VerifyDefOrigin(ver)
		assert.Equal(t, domain.CheckPass, check.Status)
	})

	t.Run("modified definition fails", func(t *testing.T) {
		dir := t.TempDir()
		ver := registerVersion(t, dir)
		writeFile(t, dir, "env.def", "Bootstrap: docker\n%post\napt update")

		check := integrity.NewVerifier().VerifyDefOrigin(ver)
		assert.Equal(t, domain.CheckFail, check.Status)
		assert.Contains(t, check.Detail, "hash mismatch")
	})

	t.Run("ignores artifact and lock files", func(t *testing.T) {
		dir := t.TempDir()
		ver := registerVersion(t, dir)
		require.NoError(t, os.Remove(ver.ArtifactPath))
		require.NoError(t, os.Remove(filepath.Join(dir, "requirements.lock")))

		check := integrity.NewVerifier().VerifyDefOrigin(ver)
		assert.Equal(t, domain.CheckPass, check.Status)
	})

	t.Run("no definition recorded skips", func(t *testing.T) {
		check := integrity.NewVerifier().VerifyDefOrigin(domain.Version{ID: "v0.0.1"})
		assert.Equal(t, domain.CheckSkip, check.Status)
	})
}
