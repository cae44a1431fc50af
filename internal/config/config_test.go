package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/freeeve/subhunt/pkg/submarine"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SUBHUNT_SUBMARINES", "SUBHUNT_MAX_HP", "SUBHUNT_LAYOUTS", "SUBHUNT_SEED", "SUBHUNT_SHOW_POSITIONS", "SUBHUNT_STRATEGY"} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg := Load()
	if cfg.SubmarineCount != 4 || cfg.MaxHP != 3 {
		t.Errorf("rules = %d/%d, want 4/3", cfg.SubmarineCount, cfg.MaxHP)
	}
	if cfg.Seed != 0 || !cfg.ShowPositions || cfg.Strategy != "heuristic" || cfg.LayoutsPath != "" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SUBHUNT_SUBMARINES", "3")
	t.Setenv("SUBHUNT_MAX_HP", "2")
	t.Setenv("SUBHUNT_SEED", "99")
	t.Setenv("SUBHUNT_SHOW_POSITIONS", "false")
	t.Setenv("SUBHUNT_STRATEGY", "random")

	cfg := Load()
	if cfg.Rules() != (submarine.Rules{SubmarineCount: 3, MaxHP: 2}) {
		t.Errorf("Rules() = %+v", cfg.Rules())
	}
	if cfg.Seed != 99 || cfg.ShowPositions || cfg.Strategy != "random" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SUBHUNT_SUBMARINES", "many")
	t.Setenv("SUBHUNT_SHOW_POSITIONS", "perhaps")

	cfg := Load()
	if cfg.SubmarineCount != 4 {
		t.Errorf("SubmarineCount = %d, want 4", cfg.SubmarineCount)
	}
	if !cfg.ShowPositions {
		t.Error("ShowPositions should fall back to true")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SUBHUNT_SEED=1234\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SUBHUNT_SEED", "")
	os.Unsetenv("SUBHUNT_SEED")

	LoadDotEnv(path)
	if got := os.Getenv("SUBHUNT_SEED"); got != "1234" {
		t.Errorf("SUBHUNT_SEED = %q, want 1234", got)
	}

	// Missing files are ignored.
	LoadDotEnv(filepath.Join(dir, "missing.env"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr bool
	}{
		{Config{SubmarineCount: 4, MaxHP: 3}, false},
		{Config{SubmarineCount: 0, MaxHP: 3}, true},
		{Config{SubmarineCount: 26, MaxHP: 3}, true},
		{Config{SubmarineCount: 4, MaxHP: 0}, true},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
		}
	}
}

const layoutsYAML = `layouts:
  - name: corners
    rows:
      - "X...X"
      - "....."
      - "....."
      - "....."
      - "X...X"
  - rows: ["X.X.X", ".....", ".....", ".....", "..X.."]
`

func writeLayouts(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLayouts(t *testing.T) {
	path := writeLayouts(t, layoutsYAML)
	layouts, err := LoadLayouts(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(layouts) != 2 {
		t.Fatalf("layouts = %d, want 2", len(layouts))
	}
	if layouts[0].Name != "corners" || layouts[0].Cells[4][4] != 3 {
		t.Errorf("first layout = %+v", layouts[0])
	}
	if layouts[1].Name != path+"#2" {
		t.Errorf("unnamed layout name = %q", layouts[1].Name)
	}
}

func TestLoadLayouts_Errors(t *testing.T) {
	if _, err := LoadLayouts(filepath.Join(t.TempDir(), "none.yaml"), 3); err == nil {
		t.Error("missing file should fail")
	}
	path := writeLayouts(t, "layouts:\n  - name: short\n    rows: [\"X...X\"]\n")
	_, err := LoadLayouts(path, 3)
	var le *submarine.LayoutError
	if !errors.As(err, &le) {
		t.Errorf("error = %v, want *LayoutError", err)
	}
	if _, err := LoadLayouts(writeLayouts(t, "layouts: [oops"), 3); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestConfig_Layouts(t *testing.T) {
	cfg := &Config{SubmarineCount: 4, MaxHP: 3, LayoutsPath: writeLayouts(t, layoutsYAML)}
	layouts, err := cfg.Layouts()
	if err != nil {
		t.Fatal(err)
	}
	// Two built-ins plus two from the file.
	if len(layouts) != 4 {
		t.Errorf("layouts = %d, want 4", len(layouts))
	}
}
