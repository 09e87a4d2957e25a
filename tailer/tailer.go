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

// Package tailer turns the various fuzzer log transports (journald, log
// files, stdin, kafka, webhook) into a uniform stream of lines.
package tailer

// Line is one log line together with the source it came from. The source
// labels self-monitoring metrics, it is not part of the line content.
type Line struct {
	Line   string
	Source string
}

// Tailer streams log lines from one input source. The lines channel closes
// when the source ends. At most one error is sent before that.
type Tailer interface {
	Lines() chan *Line
	Errors() chan Error
	Close()
}
