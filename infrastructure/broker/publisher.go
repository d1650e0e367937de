package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"github.com/vfg2006/postwise-api/internal/config"
	"github.com/vfg2006/postwise-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventActionExecuted é o tipo gravado no cabeçalho das mensagens de ação executada
const EventActionExecuted = "action.executed"

type Publisher interface {
	PublishActionExecuted(ctx context.Context, event domain.ActionExecutedEvent) error
	Close() error
}

// New devolve o publisher AMQP quando BROKER_ENABLED, ou um publisher que descarta eventos
func New(cfg config.Broker) (Publisher, error) {
	if !cfg.Enabled {
		return NoopPublisher{}, nil
	}
	return NewAMQPPublisher(cfg.URL, cfg.Queue)
}

// AMQPPublisher publica eventos numa fila durável. O canal é protegido por mutex
// porque canais AMQP não suportam uso concorrente.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("erro ao abrir canal: %w", err)
	}

	q, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("erro ao declarar fila %s: %w", queue, err)
	}

	logrus.WithField("queue", q.Name).Info("Publisher AMQP conectado")

	return &AMQPPublisher{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
	}, nil
}

func (p *AMQPPublisher) PublishActionExecuted(ctx context.Context, event domain.ActionExecutedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ActionID,
			Type:         EventActionExecuted,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("erro ao publicar evento: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher é usado quando o broker está desabilitado
type NoopPublisher struct{}

func (NoopPublisher) PublishActionExecuted(context.Context, domain.ActionExecutedEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
