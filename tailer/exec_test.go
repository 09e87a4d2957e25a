// Copyright 2025-2026 The fuzz_exporter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tailer

import (
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestExecTailerStreamsLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test spawns a unix shell")
	}
	tail, err := runExecTailer("test", logrus.New(), "sh", "-c", "printf 'line a\\nline b\\n'")
	if err != nil {
		t.Fatalf("failed to start tailer: %v", err)
	}
	defer tail.Close()

	expectLine(t, tail, "line a")
	expectLine(t, tail, "line b")

	// The command exits after writing, the tailer must report the end of
	// the stream exactly once and close the lines channel.
	select {
	case err := <-tail.Errors():
		if err.Type() != ProcessFailed {
			t.Errorf("expected ProcessFailed, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for the stream-end error")
	}
}

func TestExecTailerUnterminatedLastLine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test spawns a unix shell")
	}
	tail, err := runExecTailer("test", logrus.New(), "sh", "-c", "printf 'no newline'")
	if err != nil {
		t.Fatalf("failed to start tailer: %v", err)
	}
	defer tail.Close()
	expectLine(t, tail, "no newline")
}

func TestExecTailerCommandNotFound(t *testing.T) {
	_, err := runExecTailer("test", logrus.New(), "/nonexistent/command")
	if err == nil {
		t.Fatal("expected starting a nonexistent command to fail")
	}
}

func TestExecTailerClose(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test spawns a unix shell")
	}
	tail, err := runExecTailer("test", logrus.New(), "sh", "-c", "sleep 3600")
	if err != nil {
		t.Fatalf("failed to start tailer: %v", err)
	}
	tail.Close()
	select {
	case <-tail.Errors():
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for the killed process to be reported")
	}
}

func expectLine(t *testing.T, tail Tailer, expected string) {
	t.Helper()
	select {
	case line, ok := <-tail.Lines():
		if !ok {
			t.Fatalf("lines channel closed, expected %q", expected)
		}
		if line.Line != expected {
			t.Errorf("expected line %q, got %q", expected, line.Line)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for line %q", expected)
	}
}
