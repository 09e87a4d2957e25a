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

// Package parser extracts fuzzing progress metrics from libFuzzer log lines.
//
// The engine writes two line formats, depending on its run mode:
//
// Fork mode (one global status line, typically read from the journal):
//
//	... cargo[117394]: #2903021619: cov: 2163 ft: 20854 corp: 2853 exec/s: 1464 oom/timeout/crash: 0/0/0 time: 56383s job: 6125 dft_time: 0
//
// Job mode (per-job status lines, typically read from job log files):
//
//	RELOAD cov: 641 ft: 9191 corp: 1640/591Kb lim: 2411 exec/s: 529 rss: 36Mb
//
// Both formats are anchored at the "cov:" token, everything before it is an
// arbitrary prefix. Only the labeled fields are load-bearing, cosmetic
// changes around them do not break extraction.
package parser

import (
	"regexp"
	"strconv"

	"github.com/fuzzmon/fuzz_exporter/util/regexutil"
)

// Stats holds the numeric fields of one status line. Fields that a format
// does not report are zero, so both formats share one shape and consumers
// need not care which grammar produced a value.
type Stats struct {
	Cov        uint32
	Ft         uint32
	Corp       uint32
	CorpSize   uint64
	ExecPerSec uint32
	OOMs       uint32
	Timeouts   uint32
	Crashes    uint32
	Seconds    uint32
}

// Func is the signature shared by the line parsers. A nil result means the
// line was not recognized.
type Func func(line string) *Stats

var (
	// The colon after exec/s is optional, the engine writes both variants.
	forkLinePattern = regexp.MustCompile(
		`cov:\s+(?P<cov>\d+)\s+ft:\s+(?P<ft>\d+)\s+corp:\s+(?P<corp>\d+)\s+exec/s:?\s+(?P<exec_s>\d+)\s+oom/timeout/crash:\s+(?P<oom>\d+)/(?P<timeout>\d+)/(?P<crash>\d+)\s+time:\s+(?P<time>\d+)s`,
	)
	// The corp size suffix is optional. When a "/" follows the corp count,
	// size and unit must both be well-formed: the pattern requires
	// whitespace (or end of line) after the corp field, so a malformed
	// suffix fails the whole match instead of being skipped. Labeled fields
	// between corp and exec/s (lim: etc.) are skipped generically.
	jobLinePattern = regexp.MustCompile(
		`cov:\s+(?P<cov>\d+)\s+ft:\s+(?P<ft>\d+)\s+corp:\s+(?P<corp>\d+)(?:/(?P<size>\d+)(?P<unit>Kb|Mb|b))?(?:\s|$).*?exec/s:\s+(?P<exec_s>\d+)`,
	)
)

// Parse tries both grammars, fork mode first. Returns nil if the line
// matches neither.
func Parse(line string) *Stats {
	if stats := ParseForkLine(line); stats != nil {
		return stats
	}
	return ParseJobLine(line)
}

// ParseForkLine parses a fork mode status line. Returns nil if the line
// does not match. CorpSize is always zero, fork mode does not report it.
func ParseForkLine(line string) *Stats {
	groups, found := regexutil.FindNamedGroupsMatch(forkLinePattern, line)
	if !found {
		return nil
	}
	stats := &Stats{}
	for _, field := range []struct {
		group string
		dest  *uint32
	}{
		{"cov", &stats.Cov},
		{"ft", &stats.Ft},
		{"corp", &stats.Corp},
		{"exec_s", &stats.ExecPerSec},
		{"oom", &stats.OOMs},
		{"timeout", &stats.Timeouts},
		{"crash", &stats.Crashes},
		{"time", &stats.Seconds},
	} {
		value, err := strconv.ParseUint(groups[field.group], 10, 32)
		if err != nil {
			return nil
		}
		*field.dest = uint32(value)
	}
	return stats
}

// ParseJobLine parses a job mode status line. Returns nil if the line does
// not match. The oom/timeout/crash counters and the elapsed time are always
// zero, job mode does not report them.
func ParseJobLine(line string) *Stats {
	groups, found := regexutil.FindNamedGroupsMatch(jobLinePattern, line)
	if !found {
		return nil
	}
	stats := &Stats{}
	for _, field := range []struct {
		group string
		dest  *uint32
	}{
		{"cov", &stats.Cov},
		{"ft", &stats.Ft},
		{"corp", &stats.Corp},
		{"exec_s", &stats.ExecPerSec},
	} {
		value, err := strconv.ParseUint(groups[field.group], 10, 32)
		if err != nil {
			return nil
		}
		*field.dest = uint32(value)
	}
	if size := groups["size"]; size != "" {
		value, err := strconv.ParseUint(size, 10, 64)
		if err != nil {
			return nil
		}
		factor, ok := sizeFactor(groups["unit"])
		if !ok {
			return nil
		}
		stats.CorpSize = value * factor
	}
	return stats
}

func sizeFactor(unit string) (uint64, bool) {
	switch unit {
	case "b":
		return 1, true
	case "Kb":
		return 1024, true
	case "Mb":
		return 1024 * 1024, true
	default:
		return 0, false
	}
}
