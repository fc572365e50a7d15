package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/ui"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	t.Run("player", func(t *testing.T) {
		spec, err := LoadPlayerSpec()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if spec.Body.Width <= 0 || spec.Body.Height <= 0 {
			t.Fatalf("bad body %+v", spec.Body)
		}
		if spec.Movement.GroundMask != movement.LayerGround || spec.Movement.WallMask != movement.LayerWall {
			t.Fatalf("unexpected masks %s %s", spec.Movement.GroundMask, spec.Movement.WallMask)
		}
		if spec.Sounds.Jump == "" {
			t.Fatalf("expected a jump cue")
		}
	})
	t.Run("camera", func(t *testing.T) {
		if _, err := LoadCameraSpec(); err != nil {
			t.Fatalf("load: %v", err)
		}
	})
	t.Run("parallax", func(t *testing.T) {
		cfg, err := LoadParallaxSpec()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(cfg.Layers) == 0 {
			t.Fatalf("expected layers")
		}
	})
	t.Run("ui", func(t *testing.T) {
		cfg, err := LoadUISpec()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if _, err := ui.NewManager(cfg, nil, nil); err != nil {
			t.Fatalf("ui config rejected: %v", err)
		}
	})
	t.Run("game", func(t *testing.T) {
		spec, err := LoadGameSpec()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if spec.Level == "" || spec.AppName == "" {
			t.Fatalf("incomplete game spec %+v", spec)
		}
	})
}

func TestDecodeComponentSpec(t *testing.T) {
	raw := map[string]any{"width": 2.5, "height": 3}
	got, err := DecodeComponentSpec[BodyComponentSpec](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Width != 2.5 || got.Height != 3 {
		t.Fatalf("unexpected %+v", got)
	}
	if zero, err := DecodeComponentSpec[BodyComponentSpec](nil); err != nil || zero != (BodyComponentSpec{}) {
		t.Fatalf("nil raw should decode to zero value")
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, CameraFile), []byte("mode: lerp\nfollow_speed: 4\nview_width: 10\nview_height: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != "lerp" || cfg.FollowSpeed != 4 {
		t.Fatalf("disk copy not preferred: %+v", cfg)
	}
	if _, ok := ModTime("prefabs/" + CameraFile); !ok {
		t.Fatalf("expected mod time for disk prefab")
	}

	if err := os.WriteFile(filepath.Join(dir, CameraFile), []byte("mode: orbit\nfollow_speed: 1\nview_width: 1\nview_height: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCameraSpec(); err == nil {
		t.Fatalf("expected invalid camera mode to fail")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
		{"/home/dev/game/prefabs/ui.yaml", "ui.yaml"},
	}
	for _, tt := range tests {
		if got := cleanPrefabPath(tt.in); got != tt.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlayerFile), []byte("name: p\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		for _, name := range w.Poll() {
			if name == "notes.txt" {
				t.Fatalf("non-spec file reported")
			}
			if name == PlayerFile {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("no event for %s", PlayerFile)
}
