package config

import "testing"

func TestLoadWithFlagBeatsFileAcrossReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "field.yaml", "particles: 80\n")
	n := 5
	o := Overrides{Particles: &n}

	cfg, err := LoadWith(path, o)
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Particles != 5 {
		t.Fatalf("particles = %d, want 5", cfg.Particles)
	}

	writeFile(t, dir, "field.yaml", "particles: 90\nlink_distance: 60\n")
	cfg, err = LoadWith(path, o)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Particles != 5 {
		t.Fatalf("particles after reload = %d, want the flag's 5", cfg.Particles)
	}
	if cfg.LinkDistance != 60 {
		t.Fatalf("link_distance = %v, want 60 from the file", cfg.LinkDistance)
	}
}

func TestLoadWithFlagBeatsEnv(t *testing.T) {
	t.Setenv("FIELD_PARTICLES", "30")
	w, seed := 320, int64(7)
	cfg, err := LoadWith("", Overrides{Width: &w, Seed: &seed})
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Particles != 30 || cfg.Width != 320 || cfg.Seed != 7 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadWithValidatesOverrides(t *testing.T) {
	n := -2
	if _, err := LoadWith("", Overrides{Particles: &n}); err == nil {
		t.Fatalf("LoadWith accepted a negative particle count")
	}
}

func TestEmptyOverridesKeepConfig(t *testing.T) {
	cfg := Default()
	Overrides{}.Apply(&cfg)
	if cfg != Default() {
		t.Fatalf("empty overrides changed config: %+v", cfg)
	}
}
