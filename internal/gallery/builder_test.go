package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuilderWritesChartsAndIndex(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBuilder(dir)
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
	if err := b.WriteChart("candles", "Candlesticks", "A plain candle chart.", svg); err != nil {
		t.Fatalf("WriteChart failed: %v", err)
	}
	if err := b.WriteIndex("Chart Gallery"); err != nil {
		t.Fatalf("WriteIndex failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("index.html missing: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "<h1") || !strings.Contains(page, "Chart Gallery") {
		t.Error("markdown heading not rendered")
	}
	if !strings.Contains(page, `src="candles.svg"`) {
		t.Error("chart image link missing")
	}
	if _, err := os.Stat(filepath.Join(dir, "candles.svg")); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestBuilderCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := NewBuilder(dir); err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}
