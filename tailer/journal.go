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

import "github.com/sirupsen/logrus"

// RunJournalTailer follows the journald unit the fuzzing engine logs to.
func RunJournalTailer(unit string, userScope bool, log logrus.FieldLogger) (Tailer, error) {
	args := make([]string, 0, 5)
	if userScope {
		args = append(args, "--user")
	}
	args = append(args, "-f", "-u", unit)
	return runExecTailer("journal:"+unit, log, "journalctl", args...)
}
