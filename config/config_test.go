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

package config

import (
	"strings"
	"testing"
	"time"
)

// Defaulted fields are spelled out so the round-trip comparison against
// cfg.String() holds.
const kafkaConfig = `
input:
    type: kafka
    journal_unit: fuzz
    kafka_brokers:
    - broker-1:9092
    - broker-2:9092
    kafka_topics:
    - fuzz-logs
    kafka_version: 2.1.0
    kafka_consumer_group_name: fuzz_exporter
    kafka_partition_assignor: range
    webhook_path: /fuzz/log
aggregation:
    interval: 1s
server:
    protocol: http
    port: 9144
    path: /metrics
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfigString([]byte(kafkaConfig))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !equalsIgnoreIndentation(cfg.String(), kafkaConfig) {
		t.Errorf("expected:\n%v\nactual:\n%v\n", kafkaConfig, cfg)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadConfigString([]byte(""))
	if err != nil {
		t.Fatalf("failed to read empty config: %v", err)
	}
	if cfg.Input.Type != InputTypeJournal {
		t.Errorf("expected default input type %v, got %v", InputTypeJournal, cfg.Input.Type)
	}
	if cfg.Input.JournalUnit != "fuzz" {
		t.Errorf("expected default journal unit fuzz, got %v", cfg.Input.JournalUnit)
	}
	if cfg.Aggregation.Interval != 1*time.Second {
		t.Errorf("expected default aggregation interval 1s, got %v", cfg.Aggregation.Interval)
	}
	if cfg.Server.Protocol != "http" || cfg.Server.Port != 9144 || cfg.Server.Path != "/metrics" {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
}

func TestDurationParsing(t *testing.T) {
	cfg, err := LoadConfigString([]byte("aggregation:\n    interval: 500ms\n"))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if cfg.Aggregation.Interval != 500*time.Millisecond {
		t.Errorf("expected interval 500ms, got %v", cfg.Aggregation.Interval)
	}
}

func TestValidationErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		config string
	}{
		{"unsupported input type", "input:\n    type: carrier-pigeon\n"},
		{"kafka without brokers", "input:\n    type: kafka\n    kafka_topics:\n    - fuzz-logs\n"},
		{"kafka without topics", "input:\n    type: kafka\n    kafka_brokers:\n    - broker-1:9092\n"},
		{"invalid protocol", "server:\n    protocol: gopher\n"},
		{"https without cert and key", "server:\n    protocol: https\n"},
		{"https cert without key", "server:\n    protocol: https\n    cert: /some/cert.pem\n"},
	} {
		if _, err := LoadConfigString([]byte(test.config)); err == nil {
			t.Errorf("%v: expected a validation error", test.name)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
	if !cfg.Input.JournalUserScope {
		t.Error("default config must follow the user-scoped journal")
	}
}

func equalsIgnoreIndentation(a string, b string) bool {
	aLines := stripEmptyLines(strings.Split(a, "\n"))
	bLines := stripEmptyLines(strings.Split(b, "\n"))
	if len(aLines) != len(bLines) {
		return false
	}
	for i := range aLines {
		if strings.TrimSpace(aLines[i]) != strings.TrimSpace(bLines[i]) {
			return false
		}
	}
	return true
}

func stripEmptyLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
