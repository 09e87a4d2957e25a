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
	"bufio"
	"io"
	"os"
	"strings"
)

type stdinTailer struct {
	lines  chan *Line
	errors chan Error
}

func (t *stdinTailer) Lines() chan *Line {
	return t.lines
}

func (t *stdinTailer) Errors() chan Error {
	return t.errors
}

func (t *stdinTailer) Close() {
	// Nothing to close, the read blocks on stdin until the process ends.
}

// RunStdinTailer reads lines from standard input. Mostly useful for
// piping recorded engine output through the exporter by hand.
func RunStdinTailer() Tailer {
	t := &stdinTailer{
		lines:  make(chan *Line),
		errors: make(chan Error),
	}
	go func() {
		defer close(t.lines)
		reader := bufio.NewReader(os.Stdin)
		for {
			line, err := reader.ReadString('\n')
			if len(line) > 0 {
				t.lines <- &Line{
					Line:   strings.TrimRight(line, "\r\n"),
					Source: "stdin",
				}
			}
			if err != nil {
				if err != io.EOF {
					t.errors <- NewErrorf(StreamEnded, err, "error reading stdin")
				} else {
					t.errors <- NewError(StreamEnded, nil, "stdin closed")
				}
				return
			}
		}
	}()
	return t
}
