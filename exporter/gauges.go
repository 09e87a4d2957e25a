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

// Package exporter publishes the aggregated fuzzing metrics as Prometheus
// collectors.
package exporter

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var gaugeHelp = map[string]string{
	"fuzz_cov":       "Code coverage counter reported by the fuzzing engine (max across jobs).",
	"fuzz_feat":      "Feature counter reported by the fuzzing engine (max across jobs).",
	"fuzz_corp":      "Number of inputs in the corpus (max across jobs).",
	"fuzz_corp_size": "Total corpus size in bytes (max across jobs).",
	"fuzz_exec_s":    "Executions per second (sum across jobs).",
	"fuzz_oom":       "Cumulative out-of-memory events.",
	"fuzz_timeout":   "Cumulative timeout events.",
	"fuzz_crash":     "Cumulative crash events.",
	"fuzz_time":      "Engine-reported run duration in seconds.",
}

// GaugePublisher implements the aggregator's publish capability on top of
// Prometheus gauges. Gauges are created and registered on first use, one
// per name, and updated in place afterwards.
type GaugePublisher struct {
	registerer prometheus.Registerer
	mutex      sync.Mutex
	gauges     map[string]prometheus.Gauge
}

func NewGaugePublisher(registerer prometheus.Registerer) *GaugePublisher {
	return &GaugePublisher{
		registerer: registerer,
		gauges:     make(map[string]prometheus.Gauge),
	}
}

func (p *GaugePublisher) Set(name string, value float64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	gauge, found := p.gauges[name]
	if !found {
		help := gaugeHelp[name]
		if help == "" {
			help = "Aggregated fuzzing metric."
		}
		gauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		p.registerer.MustRegister(gauge)
		p.gauges[name] = gauge
	}
	gauge.Set(value)
}
