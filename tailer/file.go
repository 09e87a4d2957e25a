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
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// RunFileTailer follows one job log file from its current end forward.
// "-n 0" skips lines written before startup, "-F" keeps following across
// the rotations libFuzzer jobs do on reload.
func RunFileTailer(path string, log logrus.FieldLogger) (Tailer, error) {
	return runExecTailer(filepath.Base(path), log, "tail", "-n", "0", "-F", path)
}
