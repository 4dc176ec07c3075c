package queue_test

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/queue"
)

func TestRetryCount(t *testing.T) {
	assert.Equal(t, 0, queue.RetryCount(nil))
	assert.Equal(t, 0, queue.RetryCount(amqp.Table{"x-retry-count": "dos"}))
	assert.Equal(t, 2, queue.RetryCount(amqp.Table{"x-retry-count": int32(2)}))
	assert.Equal(t, 3, queue.RetryCount(amqp.Table{"x-retry-count": int64(3)}))
}

func TestDLQName(t *testing.T) {
	assert.Equal(t, "staff-notifications-dlq", queue.DLQName(queue.QueueStaffNotifications))
	assert.Equal(t, queue.QueueStaffNotificationsDLQ, queue.DLQName(queue.QueueStaffNotifications))
}
