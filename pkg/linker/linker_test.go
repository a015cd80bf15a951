package linker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
)

// denySymlinkFS simulates the unprivileged case where symlink creation
// is not allowed
type denySymlinkFS struct {
	filesystem.FS
}

func (d *denySymlinkFS) Symlink(oldname, newname string) error {
	return os.ErrPermission
}

func makeWorkbench(t *testing.T) (source, targetDir string) {
	t.Helper()
	dir := t.TempDir()
	source = filepath.Join(dir, "src", "Mod", "TestBench")
	targetDir = filepath.Join(dir, "user", "Mod")
	require.NoError(t, os.MkdirAll(filepath.Join(source, "icons"), 0755))
	require.NoError(t, os.MkdirAll(targetDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "InitGui.py"), []byte("# init"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(source, "icons", "bench.svg"), []byte("<svg/>"), 0644))
	return source, targetDir
}

func TestProvisionPrefersSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevation on windows")
	}
	source, targetDir := makeWorkbench(t)
	target := filepath.Join(targetDir, "TestBench")

	l := New(filesystem.NewOS(), false)
	result, err := l.Provision("TestBench", source, target)
	require.NoError(t, err)

	assert.Equal(t, StrategySymlink, result.Strategy)
	assert.Empty(t, result.Attempts)

	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, dest)

	// Content is visible through the link
	_, err = os.Stat(filepath.Join(target, "InitGui.py"))
	assert.NoError(t, err)
}

func TestProvisionIsIdempotent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevation on windows")
	}
	source, targetDir := makeWorkbench(t)
	target := filepath.Join(targetDir, "TestBench")

	l := New(filesystem.NewOS(), false)
	for i := 0; i < 2; i++ {
		result, err := l.Provision("TestBench", source, target)
		require.NoError(t, err)
		assert.Equal(t, StrategySymlink, result.Strategy)
	}

	// Same final state: a single link, no nesting, source untouched
	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, dest)

	_, err = os.Stat(filepath.Join(source, "InitGui.py"))
	assert.NoError(t, err)
	_, err = os.Lstat(filepath.Join(source, "TestBench"))
	assert.True(t, os.IsNotExist(err), "no nested link inside the source")
}

func TestProvisionFallsBackToCopy(t *testing.T) {
	source, targetDir := makeWorkbench(t)
	target := filepath.Join(targetDir, "TestBench")

	l := New(&denySymlinkFS{filesystem.NewOS()}, false)
	result, err := l.Provision("TestBench", source, target)
	require.NoError(t, err)

	if runtime.GOOS == "windows" {
		// A junction may succeed without privileges on windows
		assert.Contains(t, []Strategy{StrategyJunction, StrategyCopy}, result.Strategy)
		return
	}

	assert.Equal(t, StrategyCopy, result.Strategy)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, StrategySymlink, result.Attempts[0].Strategy)
	assert.Equal(t, StrategyJunction, result.Attempts[1].Strategy)

	// Full content present, nothing partial left behind
	data, err := os.ReadFile(filepath.Join(target, "InitGui.py"))
	require.NoError(t, err)
	assert.Equal(t, "# init", string(data))
	_, err = os.Stat(filepath.Join(target, "icons", "bench.svg"))
	assert.NoError(t, err)
	_, err = os.Stat(target + ".partial")
	assert.True(t, os.IsNotExist(err))
}

func TestRemovingLinkTargetKeepsSource(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevation on windows")
	}
	source, targetDir := makeWorkbench(t)
	target := filepath.Join(targetDir, "TestBench")
	require.NoError(t, os.Symlink(source, target))

	// Re-provisioning with symlinks denied removes the link and copies;
	// the directory behind the link must survive untouched
	l := New(&denySymlinkFS{filesystem.NewOS()}, false)
	result, err := l.Provision("TestBench", source, target)
	require.NoError(t, err)
	assert.Equal(t, StrategyCopy, result.Strategy)

	_, err = os.Stat(filepath.Join(source, "InitGui.py"))
	assert.NoError(t, err, "source content must survive link removal")
	_, err = os.Stat(filepath.Join(source, "icons", "bench.svg"))
	assert.NoError(t, err)
}

func TestProvisionReplacesRealDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevation on windows")
	}
	source, targetDir := makeWorkbench(t)
	target := filepath.Join(targetDir, "TestBench")

	// A stale copy from an earlier run
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "stale.py"), []byte("old"), 0644))

	l := New(filesystem.NewOS(), false)
	result, err := l.Provision("TestBench", source, target)
	require.NoError(t, err)
	assert.Equal(t, StrategySymlink, result.Strategy)

	_, err = os.Stat(filepath.Join(target, "stale.py"))
	assert.True(t, os.IsNotExist(err), "stale content must be gone")
}

func TestProvisionMissingSource(t *testing.T) {
	dir := t.TempDir()
	l := New(filesystem.NewOS(), false)

	_, err := l.Provision("Ghost", filepath.Join(dir, "missing"), filepath.Join(dir, "target"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWorkbenchNotFound))
}

func TestProvisionDryRun(t *testing.T) {
	source, targetDir := makeWorkbench(t)
	target := filepath.Join(targetDir, "TestBench")

	l := New(filesystem.NewOS(), true)
	result, err := l.Provision("TestBench", source, target)
	require.NoError(t, err)
	assert.Equal(t, StrategyNone, result.Strategy)

	_, err = os.Lstat(target)
	assert.True(t, os.IsNotExist(err), "dry run must not touch the filesystem")
}

func TestClassify(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevation on windows")
	}
	source, targetDir := makeWorkbench(t)
	l := New(filesystem.NewOS(), false)

	missing := filepath.Join(targetDir, "Missing")
	assert.Equal(t, StrategyNone, l.Classify(missing))

	linked := filepath.Join(targetDir, "Linked")
	require.NoError(t, os.Symlink(source, linked))
	assert.Equal(t, StrategySymlink, l.Classify(linked))

	copied := filepath.Join(targetDir, "Copied")
	require.NoError(t, os.MkdirAll(copied, 0755))
	assert.Equal(t, StrategyCopy, l.Classify(copied))
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "symlink", StrategySymlink.String())
	assert.Equal(t, "junction", StrategyJunction.String())
	assert.Equal(t, "copy", StrategyCopy.String())
	assert.Equal(t, "none", StrategyNone.String())
	assert.True(t, StrategySymlink.Live())
	assert.True(t, StrategyJunction.Live())
	assert.False(t, StrategyCopy.Live())
}
