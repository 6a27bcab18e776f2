package providers

import (
	"fmt"
	"pitwall/internal/structures"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// BrokerProviderInterface fans feed records out to other consumers.
type BrokerProviderInterface interface {
	Publish(category string, payload []byte) error
	Close()
}

type BrokerProvider struct {
	conn   *nats.Conn
	prefix string
}

func (b *BrokerProvider) Publish(category string, payload []byte) error {
	return b.conn.Publish(Subject(b.prefix, category), payload)
}

func (b *BrokerProvider) Close() {
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
	}
}

// Subject builds "<prefix>.<category>", tolerating a trailing dot on prefix.
func Subject(prefix, category string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return category
	}
	return prefix + "." + category
}

func NewBrokerProvider(conf *structures.Config, logger Logger) (BrokerProviderInterface, error) {
	if !conf.Broker.Enabled {
		return &noopBroker{}, nil
	}

	conn, err := nats.Connect(conf.Broker.URL,
		nats.Name(conf.AppName),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warnf(TypeFeed, "Broker disconnected: %s", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Infof(TypeFeed, "Broker reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to broker %s: %w", conf.Broker.URL, err)
	}

	logger.Infof(TypeApp, "Publishing feed records to %s.*", strings.TrimSuffix(conf.Broker.SubjectPrefix, "."))
	return &BrokerProvider{conn: conn, prefix: conf.Broker.SubjectPrefix}, nil
}

type noopBroker struct{}

func (n *noopBroker) Publish(_ string, _ []byte) error { return nil }
func (n *noopBroker) Close()                           {}
