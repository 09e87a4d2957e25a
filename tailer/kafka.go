// Copyright 2026 The fuzz_exporter Authors
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

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fuzzmon/fuzz_exporter/config"
)

type kafkaTailer struct {
	lines  chan *Line
	errors chan Error
	cancel context.CancelFunc
}

func (t *kafkaTailer) Lines() chan *Line {
	return t.lines
}

func (t *kafkaTailer) Errors() chan Error {
	return t.errors
}

func (t *kafkaTailer) Close() {
	t.cancel()
}

// RunKafkaTailer consumes engine log lines from a kafka topic, one line
// per message value.
func RunKafkaTailer(cfg *config.InputConfig, log logrus.FieldLogger) (Tailer, error) {
	version, err := sarama.ParseKafkaVersion(cfg.KafkaVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid kafka version %q", cfg.KafkaVersion)
	}
	kafkaConfig := sarama.NewConfig()
	kafkaConfig.Version = version
	switch cfg.KafkaPartitionAssignor {
	case "sticky":
		kafkaConfig.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategySticky
	case "roundrobin":
		kafkaConfig.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	case "range":
		kafkaConfig.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
	default:
		return nil, errors.Errorf("unrecognized kafka partition assignor %q", cfg.KafkaPartitionAssignor)
	}
	if cfg.KafkaConsumeFromOldest {
		kafkaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	}
	client, err := sarama.NewConsumerGroup(cfg.KafkaBrokers, cfg.KafkaConsumerGroupName, kafkaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer group")
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &kafkaTailer{
		lines:  make(chan *Line),
		errors: make(chan Error),
		cancel: cancel,
	}
	handler := &kafkaConsumer{lines: t.lines}
	go func() {
		defer close(t.lines)
		defer client.Close()
		for {
			// Consume returns on every server-side rebalance, the session
			// must be recreated to pick up the new claims.
			if err := client.Consume(ctx, cfg.KafkaTopics, handler); err != nil {
				t.errors <- NewErrorf(StreamEnded, err, "kafka consumer group %v failed", cfg.KafkaConsumerGroupName)
				return
			}
			if ctx.Err() != nil {
				log.Infof("kafka consumer group %v stopped", cfg.KafkaConsumerGroupName)
				return
			}
		}
	}()
	return t, nil
}

type kafkaConsumer struct {
	lines chan *Line
}

func (c *kafkaConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *kafkaConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *kafkaConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		session.MarkMessage(message, "")
		c.lines <- &Line{
			Line:   string(message.Value),
			Source: message.Topic,
		}
	}
	return nil
}
