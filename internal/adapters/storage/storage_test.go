package storage

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStorage_ReadWrite(t *testing.T) {
	ctx := context.Background()
	s := NewAferoStorage(afero.NewMemMapFs(), "/work")

	require.NoError(t, s.Write(ctx, "queries/sales.mdxq", []byte("cube [Sales]")))

	ok, err := s.Exists(ctx, "queries/sales.mdxq")
	require.NoError(t, err)
	assert.True(t, ok)

	content, err := s.Read(ctx, "/work/queries/sales.mdxq")
	require.NoError(t, err)
	assert.Equal(t, "cube [Sales]", string(content))

	rc, err := s.Open(ctx, "queries/sales.mdxq")
	require.NoError(t, err)
	defer rc.Close()
	streamed, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, streamed)
}

func TestAferoStorage_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewAferoStorage(afero.NewMemMapFs(), "")

	_, err := s.Read(ctx, "missing.yaml")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Open(ctx, "missing.yaml")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := s.Exists(ctx, "missing.yaml")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAferoStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewAferoStorage(afero.NewMemMapFs(), "")
	_, err := s.Read(ctx, "any")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(&Config{Type: "memory"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = NewStorage(nil, afero.NewMemMapFs())
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = NewStorage(&Config{Type: "s3"}, nil)
	assert.Error(t, err)
}
