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

// Package config holds the optional yaml configuration. The command line
// stays flag-free: a directory argument selects multi-file mode, and
// everything else (input transport, server, aggregation interval) comes
// from this file or its defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	InputTypeJournal = "journal"
	InputTypeStdin   = "stdin"
	InputTypeKafka   = "kafka"
	InputTypeWebhook = "webhook"
)

func LoadConfigFile(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %v", filename, err)
	}
	cfg, err := LoadConfigString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %v", filename, err)
	}
	return cfg, nil
}

func LoadConfigString(content []byte) (*Config, error) {
	cfg := &Config{}
	err := yaml.Unmarshal(content, cfg)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default is the configuration used when no config file is given: follow
// the user-scoped "fuzz" unit in the journal and serve plain HTTP metrics.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Input.JournalUserScope = true
	return cfg
}

func (cfg *Config) String() string {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("ERROR: failed to marshal config: %v", err)
	}
	return string(out)
}

type Config struct {
	Input       InputConfig       `yaml:",omitempty"`
	Aggregation AggregationConfig `yaml:",omitempty"`
	Server      ServerConfig      `yaml:",omitempty"`
}

type InputConfig struct {
	Type                   string   `yaml:",omitempty"`
	JournalUnit            string   `yaml:"journal_unit,omitempty"`
	JournalUserScope       bool     `yaml:"journal_user_scope,omitempty"`
	KafkaBrokers           []string `yaml:"kafka_brokers,omitempty"`
	KafkaTopics            []string `yaml:"kafka_topics,omitempty"`
	KafkaVersion           string   `yaml:"kafka_version,omitempty"`
	KafkaConsumerGroupName string   `yaml:"kafka_consumer_group_name,omitempty"`
	KafkaPartitionAssignor string   `yaml:"kafka_partition_assignor,omitempty"`
	KafkaConsumeFromOldest bool     `yaml:"kafka_consume_from_oldest,omitempty"`
	WebhookPath            string   `yaml:"webhook_path,omitempty"`
}

type AggregationConfig struct {
	Interval time.Duration `yaml:",omitempty"` // implicitly parsed with time.ParseDuration()
}

type ServerConfig struct {
	Protocol string `yaml:",omitempty"`
	Port     int    `yaml:",omitempty"`
	Path     string `yaml:",omitempty"`
	Cert     string `yaml:",omitempty"`
	Key      string `yaml:",omitempty"`
}

func (cfg *Config) setDefaults() {
	if cfg.Input.Type == "" {
		cfg.Input.Type = InputTypeJournal
	}
	if cfg.Input.JournalUnit == "" {
		cfg.Input.JournalUnit = "fuzz"
	}
	if cfg.Input.KafkaVersion == "" {
		cfg.Input.KafkaVersion = "2.1.0"
	}
	if cfg.Input.KafkaConsumerGroupName == "" {
		cfg.Input.KafkaConsumerGroupName = "fuzz_exporter"
	}
	if cfg.Input.KafkaPartitionAssignor == "" {
		cfg.Input.KafkaPartitionAssignor = "range"
	}
	if cfg.Input.WebhookPath == "" {
		cfg.Input.WebhookPath = "/fuzz/log"
	}
	if cfg.Aggregation.Interval == 0 {
		cfg.Aggregation.Interval = 1 * time.Second
	}
	if cfg.Server.Protocol == "" {
		cfg.Server.Protocol = "http"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9144
	}
	if cfg.Server.Path == "" {
		cfg.Server.Path = "/metrics"
	}
}

func (cfg *Config) validate() error {
	switch cfg.Input.Type {
	case InputTypeJournal, InputTypeStdin, InputTypeWebhook:
	case InputTypeKafka:
		if len(cfg.Input.KafkaBrokers) == 0 {
			return fmt.Errorf("invalid configuration: 'input.kafka_brokers' must not be empty for input type %v", InputTypeKafka)
		}
		if len(cfg.Input.KafkaTopics) == 0 {
			return fmt.Errorf("invalid configuration: 'input.kafka_topics' must not be empty for input type %v", InputTypeKafka)
		}
	default:
		return fmt.Errorf("invalid configuration: unsupported 'input.type': %v", cfg.Input.Type)
	}
	if cfg.Aggregation.Interval < 0 {
		return fmt.Errorf("invalid configuration: 'aggregation.interval' must be positive")
	}
	switch cfg.Server.Protocol {
	case "http":
	case "https":
		if cfg.Server.Cert != "" && cfg.Server.Key == "" {
			return fmt.Errorf("invalid configuration: 'server.cert' must not be specified without 'server.key'")
		}
		if cfg.Server.Cert == "" && cfg.Server.Key != "" {
			return fmt.Errorf("invalid configuration: 'server.key' must not be specified without 'server.cert'")
		}
		if cfg.Server.Cert == "" && cfg.Server.Key == "" {
			return fmt.Errorf("invalid configuration: 'server.protocol: https' requires 'server.cert' and 'server.key'")
		}
	default:
		return fmt.Errorf("invalid configuration: invalid 'server.protocol': %v. expecting 'http' or 'https'", cfg.Server.Protocol)
	}
	return nil
}
