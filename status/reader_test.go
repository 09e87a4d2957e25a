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

package status

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fuzzmon/fuzz_exporter/parser"
	"github.com/fuzzmon/fuzz_exporter/tailer"
)

type fakeTailer struct {
	lines  chan *tailer.Line
	errors chan tailer.Error
}

func newFakeTailer() *fakeTailer {
	return &fakeTailer{
		lines:  make(chan *tailer.Line),
		errors: make(chan tailer.Error),
	}
}

func (t *fakeTailer) Lines() chan *tailer.Line {
	return t.lines
}

func (t *fakeTailer) Errors() chan tailer.Error {
	return t.errors
}

func (t *fakeTailer) Close() {}

type countingObserver struct {
	mutex   sync.Mutex
	matched int
	ignored int
}

func (o *countingObserver) Matched(string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.matched++
}

func (o *countingObserver) Ignored(string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ignored++
}

func (o *countingObserver) counts() (int, int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return o.matched, o.ignored
}

func TestReaderUpdatesJob(t *testing.T) {
	tail := newFakeTailer()
	job := NewJobStatus()
	observer := &countingObserver{}
	StartReader(tail, job, parser.ParseJobLine, observer, logrus.New())

	tail.lines <- &tailer.Line{Line: "INFO: Seed: 12345", Source: "job0.log"}
	tail.lines <- &tailer.Line{Line: "RELOAD cov: 641 ft: 9191 corp: 1640/591Kb lim: 2411 exec/s: 529 rss: 36Mb", Source: "job0.log"}
	tail.lines <- &tailer.Line{Line: "garbage", Source: "job0.log"}
	close(tail.lines)

	waitFor(t, func() bool {
		return job.Snapshot().Cov == 641
	}, "job slot was not updated")
	waitFor(t, func() bool {
		matched, ignored := observer.counts()
		return matched == 1 && ignored == 2
	}, "line counters did not reach matched=1 ignored=2")
	if snapshot := job.Snapshot(); snapshot.CorpSize != 591*1024 {
		t.Errorf("unexpected snapshot %+v", snapshot)
	}
}

func TestReaderIgnoresMalformedLines(t *testing.T) {
	tail := newFakeTailer()
	job := NewJobStatus()
	StartReader(tail, job, parser.ParseForkLine, nil, logrus.New())

	tail.lines <- &tailer.Line{Line: "cov: abc ft: 1 corp: 1 exec/s: 1 oom/timeout/crash: 0/0/0 time: 1s", Source: "stdin"}
	close(tail.lines)

	// Give the reader a moment, then make sure nothing was written.
	time.Sleep(50 * time.Millisecond)
	if snapshot := job.Snapshot(); snapshot != (parser.Stats{}) {
		t.Errorf("malformed line must not update the slot, got %+v", snapshot)
	}
}

func TestReaderStopsOnError(t *testing.T) {
	tail := newFakeTailer()
	job := NewJobStatus()
	StartReader(tail, job, parser.ParseForkLine, nil, logrus.New())

	tail.errors <- tailer.NewError(tailer.StreamEnded, nil, "stream ended")

	// The reader must have stopped consuming: sending another line would
	// block forever, so probe with a timeout.
	select {
	case tail.lines <- &tailer.Line{Line: "cov: 1 ft: 2 corp: 3 exec/s: 4 oom/timeout/crash: 0/0/0 time: 1s", Source: "stdin"}:
		t.Error("reader still consumes lines after a stream error")
	case <-time.After(100 * time.Millisecond):
	}
}

func waitFor(t *testing.T, condition func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
