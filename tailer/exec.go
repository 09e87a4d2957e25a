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
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// execTailer streams the stdout of a spawned command line by line.
// Restarting a terminated command is deliberately not the tailer's job.
type execTailer struct {
	lines  chan *Line
	errors chan Error
	cmd    *exec.Cmd
	source string
}

func (t *execTailer) Lines() chan *Line {
	return t.lines
}

func (t *execTailer) Errors() chan Error {
	return t.errors
}

func (t *execTailer) Close() {
	if t.cmd.Process != nil {
		t.cmd.Process.Kill()
	}
}

func runExecTailer(source string, log logrus.FieldLogger, name string, arg ...string) (Tailer, error) {
	cmd := exec.Command(name, arg...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create stdout pipe for %v", name)
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to start %v", name)
	}
	log.WithField("source", source).Debugf("started %v", strings.Join(cmd.Args, " "))
	t := &execTailer{
		lines:  make(chan *Line),
		errors: make(chan Error),
		cmd:    cmd,
		source: source,
	}
	go t.readLoop(stdout, name)
	return t, nil
}

func (t *execTailer) readLoop(stdout io.Reader, name string) {
	defer close(t.lines)
	reader := bufio.NewReader(stdout)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			t.lines <- &Line{
				Line:   strings.TrimRight(line, "\r\n"),
				Source: t.source,
			}
		}
		if err != nil {
			waitErr := t.cmd.Wait()
			if err != io.EOF {
				t.errors <- NewErrorf(StreamEnded, err, "%v: error reading %v output", t.source, name)
			} else {
				t.errors <- NewErrorf(ProcessFailed, waitErr, "%v: %v terminated", t.source, name)
			}
			return
		}
	}
}
