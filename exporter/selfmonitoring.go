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

package exporter

import "github.com/prometheus/client_golang/prometheus"

const (
	statusMatched = "matched"
	statusIgnored = "ignored"
)

// LineMetrics counts consumed log lines per source. Most engine output is
// not a status line, so a healthy source shows many ignored lines next to
// a steady trickle of matched ones.
type LineMetrics struct {
	lines *prometheus.CounterVec
}

func NewLineMetrics(registerer prometheus.Registerer) *LineMetrics {
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fuzz_exporter_lines_total",
		Help: "Total number of log lines consumed per source.",
	}, []string{"source", "status"})
	registerer.MustRegister(lines)
	return &LineMetrics{lines: lines}
}

// InitSource makes the source's labels appear with zero values before the
// first line is observed.
func (m *LineMetrics) InitSource(source string) {
	m.lines.WithLabelValues(source, statusMatched).Add(0)
	m.lines.WithLabelValues(source, statusIgnored).Add(0)
}

func (m *LineMetrics) Matched(source string) {
	m.lines.WithLabelValues(source, statusMatched).Inc()
}

func (m *LineMetrics) Ignored(source string) {
	m.lines.WithLabelValues(source, statusIgnored).Inc()
}

// NewBufferLoadVec creates the per-source summary of peak line buffer
// loads observed by the buffered tailers.
func NewBufferLoadVec(registerer prometheus.Registerer) *prometheus.SummaryVec {
	load := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "fuzz_exporter_line_buffer_peak_load",
		Help: "Lines read from the input and waiting to be processed. Peak value per second.",
	}, []string{"source"})
	registerer.MustRegister(load)
	return load
}
