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
	"time"
)

// Gauge names published by the aggregator.
const (
	MetricCov      = "fuzz_cov"
	MetricFeat     = "fuzz_feat"
	MetricCorp     = "fuzz_corp"
	MetricCorpSize = "fuzz_corp_size"
	MetricExecS    = "fuzz_exec_s"
	MetricOOM      = "fuzz_oom"
	MetricTimeout  = "fuzz_timeout"
	MetricCrash    = "fuzz_crash"
	MetricTime     = "fuzz_time"
)

// Publisher is the "set named gauge" capability the aggregator publishes
// through. It is injected so the aggregator can be tested without a real
// metrics transport.
type Publisher interface {
	Set(name string, value float64)
}

// Aggregator periodically snapshots all job slots, reduces them, and
// publishes the result. Saturating metrics (coverage, features, corpus)
// reduce with max: the best-performing job represents overall progress.
// Throughput is additive across parallel jobs and reduces with sum.
//
// With withCounters set (single-source runs) the fork mode counters
// (oom/timeout/crash/time) are published as well.
type Aggregator struct {
	jobs         []*JobStatus
	publisher    Publisher
	interval     time.Duration
	withCounters bool
	stop         chan struct{}
	stopped      chan struct{}
}

func NewAggregator(jobs []*JobStatus, publisher Publisher, interval time.Duration, withCounters bool) *Aggregator {
	return &Aggregator{
		jobs:         jobs,
		publisher:    publisher,
		interval:     interval,
		withCounters: withCounters,
		stop:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
}

// Start runs the publish loop in a background goroutine until Stop is
// called. The first publish happens after one interval.
func (a *Aggregator) Start() {
	go func() {
		defer close(a.stopped)
		tick := time.NewTicker(a.interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				a.publish()
			case <-a.stop:
				return
			}
		}
	}()
}

// Stop terminates the publish loop and waits until it has returned.
func (a *Aggregator) Stop() {
	close(a.stop)
	<-a.stopped
}

// publish reduces all slots and pushes the result. With zero slots every
// reduction is its identity, 0 for both max and sum.
func (a *Aggregator) publish() {
	var (
		cov, ft, corp           uint32
		corpSize                uint64
		execPerSec              uint64
		ooms, timeouts, crashes uint32
		seconds                 uint32
	)
	for _, job := range a.jobs {
		stats := job.Snapshot()
		cov = max(cov, stats.Cov)
		ft = max(ft, stats.Ft)
		corp = max(corp, stats.Corp)
		corpSize = max(corpSize, stats.CorpSize)
		execPerSec += uint64(stats.ExecPerSec)
		ooms = max(ooms, stats.OOMs)
		timeouts = max(timeouts, stats.Timeouts)
		crashes = max(crashes, stats.Crashes)
		seconds = max(seconds, stats.Seconds)
	}
	a.publisher.Set(MetricCov, float64(cov))
	a.publisher.Set(MetricFeat, float64(ft))
	a.publisher.Set(MetricCorp, float64(corp))
	a.publisher.Set(MetricCorpSize, float64(corpSize))
	a.publisher.Set(MetricExecS, float64(execPerSec))
	if a.withCounters {
		a.publisher.Set(MetricOOM, float64(ooms))
		a.publisher.Set(MetricTimeout, float64(timeouts))
		a.publisher.Set(MetricCrash, float64(crashes))
		a.publisher.Set(MetricTime, float64(seconds))
	}
}
