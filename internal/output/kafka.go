package output

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// KafkaOutput publishes each message to the prefixed topic.
type KafkaOutput struct {
	producer    sarama.SyncProducer
	topicPrefix string
}

func NewKafkaOutput(cfg models.KafkaConfig) (*KafkaOutput, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.BrokerList, ",")
	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}
	return NewKafkaOutputWithProducer(producer, cfg.TopicPrefix), nil
}

// NewKafkaOutputWithProducer wraps an existing producer.
func NewKafkaOutputWithProducer(producer sarama.SyncProducer, topicPrefix string) *KafkaOutput {
	return &KafkaOutput{producer: producer, topicPrefix: topicPrefix}
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is closed")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topicPrefix + topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", k.topicPrefix+topic, err)
		return err
	}
	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}
