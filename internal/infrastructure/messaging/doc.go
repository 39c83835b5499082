// Package messaging publishes booking events to a RabbitMQ topic exchange
// and consumes them for client notifications.
package messaging
