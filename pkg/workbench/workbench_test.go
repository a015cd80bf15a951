package workbench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/filesystem"
)

const sampleManifest = `<?xml version="1.0" encoding="UTF-8"?>
<package format="1" xmlns="https://wiki.freecad.org/Package_Metadata">
  <name>FEMM Bridge</name>
  <description>Magnetics analysis bridge</description>
  <version>0.3.1</version>
  <maintainer email="dev@example.test">CAD Bridge Devs</maintainer>
</package>
`

func writeBench(t *testing.T, modDir, name string) string {
	t.Helper()
	dir := filepath.Join(modDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "InitGui.py"), []byte("# init"), 0644))
	return dir
}

func TestCollect(t *testing.T) {
	modDir := t.TempDir()
	writeBench(t, modDir, "EasyEDABridge")
	writeBench(t, modDir, "FEMMBridge")

	benches, err := Collect(filesystem.NewOS(), modDir, []string{"EasyEDABridge", "FEMMBridge"})
	require.NoError(t, err)
	require.Len(t, benches, 2)

	assert.Equal(t, "EasyEDABridge", benches[0].Name)
	assert.Equal(t, "EasyEDABridge", benches[0].TargetName)
	assert.Equal(t, filepath.Join(modDir, "EasyEDABridge"), benches[0].Source)
	assert.Nil(t, benches[0].Meta)
}

func TestCollectMissingWorkbench(t *testing.T) {
	modDir := t.TempDir()

	_, err := Collect(filesystem.NewOS(), modDir, []string{"Ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWorkbenchNotFound))
}

func TestCollectReadsManifest(t *testing.T) {
	modDir := t.TempDir()
	dir := writeBench(t, modDir, "FEMMBridge")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(sampleManifest), 0644))

	benches, err := Collect(filesystem.NewOS(), modDir, []string{"FEMMBridge"})
	require.NoError(t, err)
	require.Len(t, benches, 1)
	require.NotNil(t, benches[0].Meta)

	assert.Equal(t, "FEMM Bridge", benches[0].Meta.Name)
	assert.Equal(t, "0.3.1", benches[0].Meta.Version)
	assert.Equal(t, "Magnetics analysis bridge", benches[0].Meta.Description)
	assert.Equal(t, "CAD Bridge Devs", benches[0].Meta.Maintainer)
}

func TestReadMetadataMalformed(t *testing.T) {
	modDir := t.TempDir()
	dir := writeBench(t, modDir, "Broken")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("<package><name>"), 0644))

	_, err := ReadMetadata(filesystem.NewOS(), dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestReadMetadataAbsent(t *testing.T) {
	modDir := t.TempDir()
	dir := writeBench(t, modDir, "Bare")

	meta, err := ReadMetadata(filesystem.NewOS(), dir)
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestDirOptionsSkip(t *testing.T) {
	modDir := t.TempDir()
	dir := writeBench(t, modDir, "Skipped")
	require.NoError(t, os.WriteFile(filepath.Join(dir, OptionsFile), []byte("skip = true\n"), 0644))
	writeBench(t, modDir, "Kept")

	benches, err := Collect(filesystem.NewOS(), modDir, []string{"Skipped", "Kept"})
	require.NoError(t, err)
	require.Len(t, benches, 1)
	assert.Equal(t, "Kept", benches[0].Name)
}

func TestDirOptionsTargetName(t *testing.T) {
	modDir := t.TempDir()
	dir := writeBench(t, modDir, "EasyEDABridge")
	require.NoError(t, os.WriteFile(filepath.Join(dir, OptionsFile),
		[]byte("target_name = \"EasyEDA\"\n"), 0644))

	benches, err := Collect(filesystem.NewOS(), modDir, []string{"EasyEDABridge"})
	require.NoError(t, err)
	require.Len(t, benches, 1)
	assert.Equal(t, "EasyEDA", benches[0].TargetName)
}

func TestDirOptionsMalformed(t *testing.T) {
	modDir := t.TempDir()
	dir := writeBench(t, modDir, "Bad")
	require.NoError(t, os.WriteFile(filepath.Join(dir, OptionsFile), []byte("skip = maybe\n"), 0644))

	_, err := Collect(filesystem.NewOS(), modDir, []string{"Bad"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
