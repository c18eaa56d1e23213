package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"pong/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"Trace":   logrus.TraceLevel,
		"Info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"Error":   logrus.ErrorLevel,
		"Fatal":   logrus.FatalLevel,
		"Debug":   logrus.DebugLevel,
		"":        logrus.DebugLevel,
		"verbose": logrus.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerForwardsLevels(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("got %d entries", len(entries))
	}
	want := []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
	}
}

func TestInitWritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	l := New(logrus.New())
	l.Init(config.Log{Filename: path, MaxSize: 1, Level: "Info"})

	l.Debug("hidden")
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("not JSON: %q", sc.Text())
		}
		lines = append(lines, m)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want only the info entry", len(lines))
	}
	if lines[0]["msg"] != "hello" {
		t.Errorf("msg = %v", lines[0]["msg"])
	}
	if s, _ := lines[0]["session"].(string); s == "" {
		t.Error("missing session field")
	}
}

func TestDefaultLogIsSilent(t *testing.T) {
	// 未初始化前不可 panic
	Log.Info("before init")
	if err := Log.Close(); err != nil {
		t.Error(err)
	}
}
