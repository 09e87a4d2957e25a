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
	"reflect"
	"sync"
	"testing"

	"github.com/fuzzmon/fuzz_exporter/parser"
)

func TestJobStatusStartsAtZero(t *testing.T) {
	job := NewJobStatus()
	if !reflect.DeepEqual(job.Snapshot(), parser.Stats{}) {
		t.Errorf("expected all-zero snapshot, got %+v", job.Snapshot())
	}
}

func TestJobStatusUpdateSnapshot(t *testing.T) {
	job := NewJobStatus()
	stats := parser.Stats{
		Cov:        2163,
		Ft:         20854,
		Corp:       2853,
		CorpSize:   591 * 1024,
		ExecPerSec: 1464,
		OOMs:       1,
		Timeouts:   2,
		Crashes:    3,
		Seconds:    56383,
	}
	job.Update(&stats)
	if !reflect.DeepEqual(job.Snapshot(), stats) {
		t.Errorf("expected %+v, got %+v", stats, job.Snapshot())
	}
	job.Update(&parser.Stats{Cov: 1})
	if snapshot := job.Snapshot(); snapshot.Cov != 1 || snapshot.Seconds != 0 {
		t.Errorf("expected the update to replace all fields, got %+v", snapshot)
	}
}

// One writer, one reader, as in production. The test mainly gives the race
// detector something to chew on.
func TestJobStatusConcurrentAccess(t *testing.T) {
	job := NewJobStatus()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := uint32(0); i < 1000; i++ {
			job.Update(&parser.Stats{Cov: i, ExecPerSec: i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			snapshot := job.Snapshot()
			if snapshot.Cov >= 1000 {
				t.Errorf("snapshot contains a value that was never written: %+v", snapshot)
				return
			}
		}
	}()
	wg.Wait()
}
