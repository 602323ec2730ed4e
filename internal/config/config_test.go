package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binminder/internal/domain"
	"binminder/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc, err := NewConfigService(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Title = "Afvalkalender"
	cfg.UISettings.ShowWeekNumbers = true
	cfg.Bins = []domain.BinCategory{
		{DisplayLabel: "Rest", IconKey: "rest.png"},
		{DisplayLabel: "GFT", IconKey: "gft.png"},
		{DisplayLabel: "PMD", IconKey: "pmd.png"},
	}
	require.NoError(t, svc.Save(cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version = 1")
	assert.Contains(t, string(raw), "[[bins]]")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	catalog, err := loaded.Catalog()
	require.NoError(t, err)
	b, ok := catalog.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "pmd.png", b.IconKey)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"Mijn bakken\"\n"), 0644))

	svc, err := NewConfigService(path)
	require.NoError(t, err)
	cfg, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, "Mijn bakken", cfg.Title)
	assert.Equal(t, 1, cfg.Version)
	assert.True(t, cfg.UISettings.WeekStartsMonday)
	assert.Empty(t, cfg.Bins)
}

func TestLoadRejectsWrongBinCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[[bins]]
label = "Rest"
icon_key = "rest.png"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	svc, err := NewConfigService(path)
	require.NoError(t, err)
	_, err = svc.Load()
	require.ErrorIs(t, err, ErrInvalidBins)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \n"), 0644))

	svc, err := NewConfigService(path)
	require.NoError(t, err)
	_, err = svc.Load()
	require.Error(t, err)
}

func TestValidateRejectsEmptyFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bins = []domain.BinCategory{
		{DisplayLabel: "Rest", IconKey: "rest.png"},
		{DisplayLabel: "GFT"},
		{DisplayLabel: "PMD", IconKey: "pmd.png"},
	}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidBins)

	_, err := cfg.Catalog()
	require.ErrorIs(t, err, ErrInvalidBins)
}

func TestDefaultCatalogWhenNoBins(t *testing.T) {
	catalog, err := DefaultConfig().Catalog()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBinCatalog(), catalog)
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	loaded := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { loaded <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc, err := NewConfigServiceWithBus(path, bus)
	require.NoError(t, err)
	_, err = svc.Load()
	require.NoError(t, err)

	select {
	case e := <-loaded:
		assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path, Bins: 0}, e)
	case <-time.After(time.Second):
		t.Fatal("no ConfigLoaded event")
	}
	bus.Close()
}

func TestTildeExpansion(t *testing.T) {
	svc, err := NewConfigService("~/binminder.toml")
	require.NoError(t, err)
	assert.NotContains(t, svc.Path(), "~")
	assert.True(t, filepath.IsAbs(svc.Path()))
}
