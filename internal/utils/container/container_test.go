package container

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/olap-go/internal/config"
	"github.com/satishbabariya/olap-go/internal/service"
)

func TestNewContainer_HistoryDisabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "queries/sales.mdxq",
		[]byte("cube [Sales]\non columns [Measures].[Amount]\non rows [Time].[2020]\n"), 0644))

	cfg := config.Default()
	cfg.Storage.BasePath = "queries"

	c, err := NewContainer(cfg, fs)
	require.NoError(t, err)
	defer c.Close(context.Background())

	assert.Same(t, cfg, c.Config())
	assert.NotNil(t, c.ResultService())

	compiled, err := c.QueryService().BuildFile(context.Background(), "sales.mdxq")
	require.NoError(t, err)
	assert.Equal(t, "SELECT {[Measures].[Amount]} ON COLUMNS, [Time].[2020] ON ROWS FROM [Sales]", compiled.MDX)

	_, err = c.QueryService().History(context.Background(), 10)
	assert.ErrorIs(t, err, service.ErrHistoryDisabled)
}

func TestNewContainer_HistoryEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.History.Enabled = true

	// The history database is not opened until first use
	c, err := NewContainer(cfg, afero.NewMemMapFs())
	require.NoError(t, err)
	assert.NoError(t, c.Close(context.Background()))
}

func TestNewContainer_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = "s3"
	_, err := NewContainer(cfg, nil)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.History.Enabled = true
	cfg.History.Provider = "oracle"
	_, err = NewContainer(cfg, nil)
	assert.Error(t, err)
}
