package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const DefaultTopic = "library-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second
	defaultCfg.Producer.Retry.Max = 1

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Entity string

const (
	EntityStudent Entity = "aluno"
	EntityBook    Entity = "livro"
	EntityLoan    Entity = "emprestimo"
)

type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

// Event describes a committed change of a library record.
type Event struct {
	ID        string    `json:"id"`
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	EntityID  int       `json:"entityId"`
	Timestamp time.Time `json:"timestamp"`
}
