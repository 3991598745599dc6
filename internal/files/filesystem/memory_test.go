package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("a.txt", "alpha")
	mfs.AddFile("sub/b.txt", "beta")
	mfs.AddFile("sub/deep/c.txt", "gamma")

	infos, err := mfs.ReadDir("/project")
	require.NoError(t, err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	// One level only: deep entries must not leak into the listing.
	assert.ElementsMatch(t, []string{"a.txt", "sub"}, names)
}

func TestMemoryFileSystem_ReadDir_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")

	_, err := mfs.ReadDir("/project/else")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadDir_Denied(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("secret/x.txt", "x")
	mfs.DenyAccess("secret")

	_, err := mfs.ReadDir("/project/secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestMemoryFileSystem_Open(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("data.bin", "payload")

	r, err := mfs.Open("data.bin")
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestMemoryFileSystem_Open_Failures(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("ok.txt", "fine")
	mfs.AddFile("denied.txt", "no")
	mfs.DenyAccess("denied.txt")

	_, err := mfs.Open("missing.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Open("denied.txt")
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestMemoryFileSystem_FailReads(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("flaky.txt", "content")
	mfs.FailReads("flaky.txt")

	r, err := mfs.Open("flaky.txt")
	require.NoError(t, err)
	defer r.Close()

	_, err = io.ReadAll(r)
	assert.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("f.txt", "12345")

	info, err := mfs.Stat("f.txt")
	require.NoError(t, err)
	assert.Equal(t, "f.txt", info.Name())
	assert.Equal(t, int64(5), info.Size())
	assert.False(t, info.IsDir())

	_, err = mfs.Stat("absent")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("f.txt", "hello")

	content, err := mfs.ReadFile("f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}
