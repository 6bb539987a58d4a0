package kafka

import (
	"encoding/json"

	"github.com/IBM/sarama"
)

const (
	CirculationTopic = "circulation-events"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// Publish json-encodes the event and sends it keyed by key, so events for
// one entity land in one partition in order.
func Publish(producer sarama.SyncProducer, topic, key string, event any) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, _, err = producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(raw),
	})
	return err
}
