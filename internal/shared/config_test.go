package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	c, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Empty(t, c.FreelancerIDs)
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr: ":9000"
log_level: debug
import_workers: 3
freelancer_ids: [11, 12]
cache_ttl: 30s
`), 0o600))

	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("FREELANCER_IDS", "5, 6,,7")

	c, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.HTTPAddr, "env wins over file")
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
	assert.Equal(t, []int64{5, 6, 7}, c.FreelancerIDs)
}

func TestLoadFrom_Errors(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("import_workers: [oops"), 0o600))
	_, err = LoadFrom(bad)
	assert.Error(t, err)

	t.Setenv("FREELANCER_IDS", "1,abc")
	_, err = LoadFrom("")
	assert.Error(t, err)
}

func TestLoadFrom_Clamps(t *testing.T) {
	t.Setenv("IMPORT_WORKERS", "0")
	t.Setenv("MARKETPLACE_RPS", "-2")
	c, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Workers)
	assert.Equal(t, 1, c.MarketplaceRPS)
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs(" 1,2 , 3 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	_, err = ParseIDs("4,-1")
	assert.Error(t, err)
}
