// Package rabbitmq подключение к брокеру и обмен сообщениями об окончании абонементов.
package rabbitmq

// Exchange direct-обменник уведомлений.
const Exchange = "notifications"

// Маршрутизация уведомлений об истекающих абонементах.
const (
	RoutingKeyMembershipExpiring = "membership.expiring"
	QueueMembershipExpiring      = "notification.membership_expiring"
)

// QueueConfig очередь и ключ, которым она привязана к Exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// NotificationQueues очереди, которые объявляет отправитель уведомлений.
func NotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: QueueMembershipExpiring, RoutingKey: RoutingKeyMembershipExpiring},
	}
}
