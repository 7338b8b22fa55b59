package wheelhouse

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func writeTarGz(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func TestExtractZipWithTopLevelFolder(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "wheels.zip")
	writeZip(t, archive, map[string]string{
		"wheels/numpy-1.0-py3-none-any.whl":    "numpy",
		"wheels/requests-2.0-py3-none-any.whl": "requests",
	})

	dest := filepath.Join(dir, "out")
	links, err := Extract(archive, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "wheels"), links)

	data, err := os.ReadFile(filepath.Join(links, "numpy-1.0-py3-none-any.whl"))
	require.NoError(t, err)
	assert.Equal(t, "numpy", string(data))
}

func TestExtractTarGzFlat(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "wheels.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"numpy-1.0-py3-none-any.whl": "numpy",
		"six-1.0-py3-none-any.whl":   "six",
	})

	dest := filepath.Join(dir, "out")
	links, err := Extract(archive, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, links)
	assert.FileExists(t, filepath.Join(dest, "six-1.0-py3-none-any.whl"))
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.tgz")
	writeTarGz(t, archive, map[string]string{"../escape.whl": "x"})

	_, err := Extract(archive, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "escape.whl"))
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("wheels.rar", t.TempDir())
	assert.ErrorContains(t, err, "unsupported archive format")
}

func TestExtractMissingArchive(t *testing.T) {
	dir := t.TempDir()
	_, err := Extract(filepath.Join(dir, "nope.7z"), filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestCommonRoot(t *testing.T) {
	assert.Equal(t, "w", commonRoot([]string{"w/", "w/a.whl", "w/b.whl"}))
	assert.Equal(t, "", commonRoot([]string{"w/a.whl", "x/b.whl"}))
	assert.Equal(t, "", commonRoot([]string{"a.whl"}))
	assert.Equal(t, "", commonRoot(nil))
}
