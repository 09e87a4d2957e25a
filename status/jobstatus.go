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

// Package status keeps the latest parsed values per input source and
// periodically reduces them into process-wide gauges.
package status

import (
	"sync/atomic"

	"github.com/fuzzmon/fuzz_exporter/parser"
)

// JobStatus is the slot holding the most recently parsed values for one
// input source. Exactly one reader goroutine writes it, any number of
// goroutines may read it. All fields are independent atomics.
type JobStatus struct {
	cov        atomic.Uint32
	ft         atomic.Uint32
	corp       atomic.Uint32
	corpSize   atomic.Uint64
	execPerSec atomic.Uint32
	ooms       atomic.Uint32
	timeouts   atomic.Uint32
	crashes    atomic.Uint32
	seconds    atomic.Uint32
}

func NewJobStatus() *JobStatus {
	return &JobStatus{}
}

// Update replaces the slot's values field by field.
func (j *JobStatus) Update(stats *parser.Stats) {
	j.cov.Store(stats.Cov)
	j.ft.Store(stats.Ft)
	j.corp.Store(stats.Corp)
	j.corpSize.Store(stats.CorpSize)
	j.execPerSec.Store(stats.ExecPerSec)
	j.ooms.Store(stats.OOMs)
	j.timeouts.Store(stats.Timeouts)
	j.crashes.Store(stats.Crashes)
	j.seconds.Store(stats.Seconds)
}

// Snapshot reads the slot's values field by field. A snapshot taken while
// Update runs may combine fields of two consecutive updates. That is fine
// for monitoring data: each field is still a recently reported value, and
// the cheap lock-free slot is worth the occasionally torn combination.
func (j *JobStatus) Snapshot() parser.Stats {
	return parser.Stats{
		Cov:        j.cov.Load(),
		Ft:         j.ft.Load(),
		Corp:       j.corp.Load(),
		CorpSize:   j.corpSize.Load(),
		ExecPerSec: j.execPerSec.Load(),
		OOMs:       j.ooms.Load(),
		Timeouts:   j.timeouts.Load(),
		Crashes:    j.crashes.Load(),
		Seconds:    j.seconds.Load(),
	}
}
