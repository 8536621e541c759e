package storage

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStorePutGet(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	key, err := s.Put("snapshots/./dataset-1.json", strings.NewReader(`[1,2]`))
	require.NoError(t, err)
	assert.Equal(t, "snapshots/dataset-1.json", key)

	rc, err := s.Get(key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(body))

	// overwrite replaces the content
	_, err = s.Put(key, strings.NewReader(`[]`))
	require.NoError(t, err)
	rc2, err := s.Get(key)
	require.NoError(t, err)
	defer rc2.Close()
	body, _ = io.ReadAll(rc2)
	assert.Equal(t, `[]`, string(body))
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	for _, k := range []string{"", ".", "a/..", "..", "../x", "a/../../x", "/etc/passwd"} {
		_, err := s.Put(k, strings.NewReader("x"))
		assert.True(t, errors.Is(err, ErrBadKey), k)
	}
}
