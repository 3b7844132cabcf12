package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTunables(t *testing.T) {
	tun := DefaultTunables()
	if tun.AxisJitter != 0.2 {
		t.Errorf("expected axis jitter 0.2, got %f", tun.AxisJitter)
	}
	if tun.AbsorptionProbability != 0.3 {
		t.Errorf("expected absorption probability 0.3, got %f", tun.AbsorptionProbability)
	}
	if tun.SpawnPeriodTicks != 20 || tun.AngularStepDegrees != 2 || tun.PhotonPixelSize != 1 {
		t.Errorf("unexpected integer defaults: %+v", tun)
	}
}

func TestSetParses(t *testing.T) {
	tests := []struct {
		field Field
		text  string
		check func(Tunables) bool
	}{
		{AxisJitter, " 0,5 ", func(t Tunables) bool { return t.AxisJitter == 0.5 }},
		{AbsorptionProbability, "1", func(t Tunables) bool { return t.AbsorptionProbability == 1 }},
		{SpawnPeriodTicks, "7\n", func(t Tunables) bool { return t.SpawnPeriodTicks == 7 }},
		{AngularStepDegrees, "90", func(t Tunables) bool { return t.AngularStepDegrees == 90 }},
		{PhotonPixelSize, "3", func(t Tunables) bool { return t.PhotonPixelSize == 3 }},
	}
	for _, tt := range tests {
		tun := DefaultTunables()
		if err := tun.Set(tt.field, tt.text); err != nil {
			t.Errorf("%s: unexpected error %v", tt.field, err)
			continue
		}
		if !tt.check(tun) {
			t.Errorf("%s: value %q not stored, got %+v", tt.field, tt.text, tun)
		}
	}
}

func TestSetRejectsKeepsValue(t *testing.T) {
	for _, f := range Fields {
		tun := DefaultTunables()
		before := tun.Get(f)
		if err := tun.Set(f, "abc"); err == nil {
			t.Errorf("%s: expected parse error", f)
		}
		if got := tun.Get(f); got != before {
			t.Errorf("%s: expected %s retained, got %s", f, before, got)
		}
	}

	tun := DefaultTunables()
	if err := tun.Set(SpawnPeriodTicks, "2.5"); err == nil {
		t.Error("expected integer field to reject a float")
	}
	if tun.SpawnPeriodTicks != 20 {
		t.Errorf("expected spawn period 20, got %d", tun.SpawnPeriodTicks)
	}
}

func TestGetRoundTrips(t *testing.T) {
	tun := Tunables{AxisJitter: 0.125, AbsorptionProbability: 0.75, SpawnPeriodTicks: 3, AngularStepDegrees: 45, PhotonPixelSize: 2}
	var back Tunables
	for _, f := range Fields {
		if err := back.Set(f, tun.Get(f)); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
	if back != tun {
		t.Errorf("expected %+v, got %+v", tun, back)
	}
}

func TestFeedDrainKeepsLatest(t *testing.T) {
	feed := NewFeed()
	cur := DefaultTunables()

	if got := feed.Drain(cur); got != cur {
		t.Errorf("expected unchanged tunables on empty feed, got %+v", got)
	}

	ctx := context.Background()
	first, second := cur, cur
	first.AbsorptionProbability = 0.9
	second.AbsorptionProbability = 0.1
	if err := feed.Post(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := feed.Post(ctx, second); err != nil {
		t.Fatal(err)
	}
	if got := feed.Drain(cur); got.AbsorptionProbability != 0.1 {
		t.Errorf("expected latest probability 0.1, got %f", got.AbsorptionProbability)
	}
}

func TestFeedPostCanceled(t *testing.T) {
	feed := NewFeed()
	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < cap(feed.ch); i++ {
		if err := feed.Post(ctx, DefaultTunables()); err != nil {
			t.Fatal(err)
		}
	}
	cancel()
	if err := feed.Post(ctx, DefaultTunables()); err == nil {
		t.Error("expected error posting to a full feed after cancel")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != WindowWidth || cfg.Obstacles != InitialObstacles {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	path := filepath.Join(t.TempDir(), "photons.toml")
	data := "width = 800\nheight = 600\nsound = true\n\n[tunables]\nabsorption_probability = 0.0\nangular_step_degrees = 90\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || !cfg.Sound {
		t.Errorf("expected window 800x600 with sound, got %+v", cfg)
	}
	if cfg.Tunables.AngularStepDegrees != 90 || cfg.Tunables.AbsorptionProbability != 0 {
		t.Errorf("expected tunables from file, got %+v", cfg.Tunables)
	}
	if cfg.Tunables.SpawnPeriodTicks != 20 {
		t.Errorf("expected default spawn period kept, got %d", cfg.Tunables.SpawnPeriodTicks)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := map[string]string{
		"unknown.toml": "colour = 1\n",
		"size.toml":    "width = 0\n",
		"fade.toml":    "[colors]\nfade = [\"#ffffff\"]\n",
		"syntax.toml":  "width = \n",
	}
	for name, data := range bad {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
