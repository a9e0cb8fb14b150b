package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

type CacheAppointmentMessage struct {
	DoctorID    uuid.UUID          `json:"doctor_id"`
	Appointment domain.Appointment `json:"appointment"`
}

func (l *AppointmentListener) startAppointmentQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.QueueConfig.AppointmentQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.QueueConfig.AppointmentQueueBind,
		l.cfg.RabbitMQ.QueueConfig.AppointmentQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processAppointmentMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *AppointmentListener) processAppointmentMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAppointment {
		return nil
	}

	var msgJson CacheAppointmentMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("appointment.message.received", out.LogFields{
		"doctorId":      msgJson.DoctorID,
		"appointmentId": msgJson.Appointment.ID,
		"routingKey":    msg.RoutingKey,
	})

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		go l.useCase.InvalidateAppointmentSlot(ctx, msgJson.DoctorID, msgJson.Appointment)

		l.logger.Info("appointment.message.invalidated", out.LogFields{
			"appointmentId": msgJson.Appointment.ID,
		})
	}

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeStore {
		go l.useCase.StoreAppointmentSlot(ctx, msgJson.DoctorID, msgJson.Appointment)

		l.logger.Info("appointment.message.stored", out.LogFields{
			"appointmentId": msgJson.Appointment.ID,
		})
	}

	return nil
}
