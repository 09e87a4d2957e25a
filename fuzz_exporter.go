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

// fuzz_exporter follows the progress output of a libFuzzer-style fuzzing
// engine and serves the extracted metrics as Prometheus gauges.
//
// Usage:
//
//	fuzz_exporter            follow the journal unit from the config (format A)
//	fuzz_exporter <dir>      follow every *.log file in <dir> (format B)
//
// There are no flags. The optional config file is read from the path in
// $FUZZ_EXPORTER_CONFIG.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fuzzmon/fuzz_exporter/config"
	"github.com/fuzzmon/fuzz_exporter/exporter"
	"github.com/fuzzmon/fuzz_exporter/parser"
	"github.com/fuzzmon/fuzz_exporter/server"
	"github.com/fuzzmon/fuzz_exporter/status"
	"github.com/fuzzmon/fuzz_exporter/tailer"
)

const configEnv = "FUZZ_EXPORTER_CONFIG"

func main() {
	log := logrus.StandardLogger()
	log.Info(exporter.VersionString())

	cfg, err := loadConfig()
	exitOnError(err)

	registry := prometheus.NewRegistry()
	publisher := exporter.NewGaugePublisher(registry)
	lineMetrics := exporter.NewLineMetrics(registry)
	bufferLoad := exporter.NewBufferLoadVec(registry)

	mux := http.NewServeMux()
	mux.Handle(cfg.Server.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	var (
		jobs         []*status.JobStatus
		withCounters bool
	)
	if len(os.Args) > 1 {
		// Multi-source mode: one job slot per log file, format B, only the
		// five reduced gauges.
		jobs, err = startFileReaders(os.Args[1], lineMetrics, bufferLoad, log)
		exitOnError(err)
	} else {
		// Single-source mode: one slot, plus the raw oom/timeout/crash/time
		// counters that only make sense without reduction.
		jobs, err = startInputReader(cfg, mux, lineMetrics, bufferLoad, log)
		exitOnError(err)
		withCounters = true
	}

	aggregator := status.NewAggregator(jobs, publisher, cfg.Aggregation.Interval, withCounters)
	aggregator.Start()

	fmt.Printf("Starting server on %v://localhost:%v%v\n", cfg.Server.Protocol, cfg.Server.Port, cfg.Server.Path)
	exitOnError(fmt.Errorf("server error: %v", server.Run(&cfg.Server, mux)))
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(-1)
	}
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv(configEnv); path != "" {
		return config.LoadConfigFile(path)
	}
	return config.Default(), nil
}

// startFileReaders scans dir for *.log files and starts one tailer and
// reader per file. The file set is fixed at startup, files appearing later
// are not picked up.
func startFileReaders(dir string, lineMetrics *exporter.LineMetrics, bufferLoad *prometheus.SummaryVec, log logrus.FieldLogger) ([]*status.JobStatus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read log directory %v", dir)
	}
	jobs := make([]*status.JobStatus, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		source := entry.Name()
		tail, err := tailer.RunFileTailer(filepath.Join(dir, entry.Name()), log)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, startReader(tail, source, parser.ParseJobLine, lineMetrics, bufferLoad, log))
	}
	if len(jobs) == 0 {
		log.Warnf("no *.log files found in %v, all gauges will stay 0", dir)
	}
	return jobs, nil
}

// startInputReader starts the single source selected by the config.
func startInputReader(cfg *config.Config, mux *http.ServeMux, lineMetrics *exporter.LineMetrics, bufferLoad *prometheus.SummaryVec, log logrus.FieldLogger) ([]*status.JobStatus, error) {
	var (
		tail   tailer.Tailer
		source string
		parse  parser.Func
		err    error
	)
	switch cfg.Input.Type {
	case config.InputTypeJournal:
		source = "journal:" + cfg.Input.JournalUnit
		parse = parser.ParseForkLine
		tail, err = tailer.RunJournalTailer(cfg.Input.JournalUnit, cfg.Input.JournalUserScope, log)
		if err != nil {
			return nil, err
		}
	case config.InputTypeStdin:
		source = "stdin"
		parse = parser.ParseForkLine
		tail = tailer.RunStdinTailer()
	case config.InputTypeKafka:
		// The transport does not pin a run mode, try both grammars.
		source = "kafka"
		parse = parser.Parse
		tail, err = tailer.RunKafkaTailer(&cfg.Input, log)
		if err != nil {
			return nil, err
		}
	case config.InputTypeWebhook:
		source = "webhook"
		parse = parser.Parse
		webhook := tailer.NewWebhookTailer(log)
		mux.Handle(cfg.Input.WebhookPath, webhook)
		tail = webhook
	default:
		// config.validate() only lets the types above through.
		return nil, errors.Errorf("unsupported input type %v", cfg.Input.Type)
	}
	return []*status.JobStatus{startReader(tail, source, parse, lineMetrics, bufferLoad, log)}, nil
}

func startReader(tail tailer.Tailer, source string, parse parser.Func, lineMetrics *exporter.LineMetrics, bufferLoad *prometheus.SummaryVec, log logrus.FieldLogger) *status.JobStatus {
	lineMetrics.InitSource(source)
	job := status.NewJobStatus()
	buffered := tailer.BufferedTailer(tail, bufferLoad.WithLabelValues(source))
	status.StartReader(buffered, job, parse, lineMetrics, log.WithField("source", source))
	return job
}
