package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/storage"
)

const testData = `{
  "personalInfo": {"name": "Jane Doe", "title": "Engineer", "bio": "Hi", "email": "jane@example.com"},
  "projects": [{"title": "A", "description": "d1"}],
  "experience": [{"role": "Engineer", "company": "Acme", "period": "2021", "description": "Ran it."}],
  "skills": [{"name": "Languages", "list": ["Go"]}]
}`

// writeSite creates a site and a config pointing at it and returns the config
// path and the data dir.
func writeSite(t *testing.T, withData bool) (string, string) {
	t.Helper()
	root := t.TempDir()
	site := filepath.Join(root, "site")
	data := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(site, 0o755))
	if withData {
		require.NoError(t, os.WriteFile(filepath.Join(site, "data.json"), []byte(testData), 0o644))
	}

	cfg := "site:\n  dir: " + site + "\nstorage:\n  data_dir: " + data + "\n"
	path := filepath.Join(root, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path, data
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	renderOut, renderTheme, renderSection = "", "", 0
	statsRecent, statsJSON = 10, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderWritesPopulatedPage(t *testing.T) {
	cfg, _ := writeSite(t, true)

	out, err := execute(t, "render", "--config", cfg, "--theme", "light", "--section", "2")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Find("#about-content h1").Text())
	assert.Equal(t, 1, doc.Find("#projects-scroll .project-card").Length())
	assert.Equal(t, "skills", doc.Find(".panel.active").AttrOr("id", ""))
	assert.True(t, doc.Find("body").HasClass("light-theme"))
}

func TestRenderToFile(t *testing.T) {
	cfg, _ := writeSite(t, true)
	dest := filepath.Join(t.TempDir(), "index.html")

	_, err := execute(t, "render", "--config", cfg, "-o", dest)
	require.NoError(t, err)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "dark-theme")
}

func TestRenderFailsWithoutData(t *testing.T) {
	cfg, _ := writeSite(t, false)
	dest := filepath.Join(t.TempDir(), "index.html")

	_, err := execute(t, "render", "--config", cfg, "-o", dest)
	require.Error(t, err)
	assert.NoFileExists(t, dest)
}

func TestRenderRejectsUnknownTheme(t *testing.T) {
	cfg, _ := writeSite(t, true)

	_, err := execute(t, "render", "--config", cfg, "--theme", "sepia")
	assert.ErrorContains(t, err, "unknown theme")
}

func TestStats(t *testing.T) {
	cfg, dataDir := writeSite(t, true)

	store, err := storage.Open(dataDir)
	require.NoError(t, err)
	now := time.Now()
	for _, ip := range []string{"aaaa", "aaaa", "bbbb"} {
		require.NoError(t, store.RecordVisit(context.Background(), storage.Visit{
			HashedIP: ip, Path: "/", UserAgent: "test", VisitedAt: now,
		}))
	}
	require.NoError(t, store.Close())

	out, err := execute(t, "stats", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Total visits:     3")
	assert.Contains(t, out, "Unique visitors:  2")
	assert.Contains(t, out, "bbbb")

	out, err = execute(t, "stats", "--config", cfg, "--json", "-n", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_visits": 3`)
}
