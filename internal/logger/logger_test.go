package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// initFile points the logger at a fresh file under t.TempDir and returns its
// path.
func initFile(t *testing.T, lvl string, maxSizeMB int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lionfan.log")
	cfg := FileConfig{Path: path, MaxSizeMB: maxSizeMB, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig(lvl, cfg, false); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Cleanup(func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(b)
}

func TestFileRotation(t *testing.T) {
	path := initFile(t, "info", 1)

	// ~3MB of entries against a 1MB limit.
	payload := strings.Repeat("m", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infow("tick", "frame", i, "payload", payload)
	}
	Sync()

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var rotated int
	for _, e := range entries {
		name := e.Name()
		if name == "lionfan.log" || !strings.HasPrefix(name, "lionfan-") {
			continue
		}
		rotated++
		if !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %s lacks .log suffix", name)
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files next to %s", path)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		drop  []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"bogus", []string{"INFO"}, []string{"DEBUG"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFile(t, tt.level, 10)

			Debug("pose advanced")
			Info("stage built")
			Warn("config hot reload disabled")
			Error("frame loop failed")

			out := readLog(t, path)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("level %s: missing %s entry", tt.level, w)
				}
			}
			for _, d := range tt.drop {
				if strings.Contains(out, d) {
					t.Errorf("level %s: unexpected %s entry", tt.level, d)
				}
			}
		})
	}
}

func TestNopBeforeInit(t *testing.T) {
	if Log == nil || Sugar == nil {
		t.Fatal("logger must be usable before Init")
	}
	Debug("dropped")
	Named("stage").Info("dropped")
}

func TestSetLevelAtRuntime(t *testing.T) {
	path := initFile(t, "info", 1)

	Debug("before switch")
	SetLevel("debug")
	if got := Level().String(); got != "debug" {
		t.Fatalf("Level() = %s, want debug", got)
	}
	Named("stage").Debug("after switch")

	out := readLog(t, path)
	if strings.Contains(out, "before switch") {
		t.Error("debug entry logged while level was info")
	}
	if !strings.Contains(out, "after switch") {
		t.Error("debug entry missing after SetLevel")
	}
	if !strings.Contains(out, "stage") {
		t.Error("named logger did not record its name")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("/tmp/lionfan.log")
	want := FileConfig{Path: "/tmp/lionfan.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", got, want)
	}
}
