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
	"github.com/sirupsen/logrus"

	"github.com/fuzzmon/fuzz_exporter/parser"
	"github.com/fuzzmon/fuzz_exporter/tailer"
)

// LineObserver is notified about every consumed line. Implementations
// must be safe for concurrent use, one reader goroutine runs per source.
type LineObserver interface {
	Matched(source string)
	Ignored(source string)
}

// StartReader consumes a tailer in a background goroutine: every line is
// run through parse, recognized lines update the job slot, the rest are
// dropped. Unrecognized lines are the common case (most engine output is
// not a status line), so they produce no log noise.
//
// The reader stops permanently when the line channel closes or the tailer
// reports an error. The slot keeps its last values, so gauges for a dead
// source go stale rather than disappear. Restarting the underlying input
// is the responsibility of whoever spawned it, not the reader's.
func StartReader(tail tailer.Tailer, job *JobStatus, parse parser.Func, observer LineObserver, log logrus.FieldLogger) {
	go func() {
		for {
			select {
			case line, ok := <-tail.Lines():
				if !ok {
					log.Debug("input closed, reader stopping")
					return
				}
				if stats := parse(line.Line); stats != nil {
					job.Update(stats)
					if observer != nil {
						observer.Matched(line.Source)
					}
				} else if observer != nil {
					observer.Ignored(line.Source)
				}
			case err, ok := <-tail.Errors():
				if ok && err != nil {
					log.Warnf("input failed, reader stopping: %v", err)
				} else {
					log.Debug("input closed, reader stopping")
				}
				return
			}
		}
	}()
}
