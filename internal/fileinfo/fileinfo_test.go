package fileinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antgroup/zeta-record/internal/record"
)

func TestReadMissingPathIsAbsent(t *testing.T) {
	info, err := Read(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.True(t, info.Mode.IsAbsent())
	require.Equal(t, record.ContentsAbsent, info.Contents.Kind)
}

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

	info, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, record.Unix(record.UnixRegular), info.Mode)
	require.Equal(t, record.ContentsText, info.Contents.Kind)
	require.Equal(t, "hello\n", info.Contents.Text)
}

func TestReadExecutableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	info, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, record.Unix(record.UnixExecutable), info.Mode)
}

func TestReadBinaryFileWithNUL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin.dat")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x00, 0x02}, 0o644))

	info, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, record.ContentsBinary, info.Contents.Kind)
}

func TestReadDirectoryPathIsRejected(t *testing.T) {
	dir := t.TempDir()
	_, err := Read(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}

func TestReadBinaryFileWithInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin2.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x01}, 0o644))

	info, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, record.ContentsBinary, info.Contents.Kind)
}
