// Package notify implements the SMS gateway and the email transport ports.
//
// The simulated implementations wait a fixed latency and fail at random; the
// Publisher hands both kinds of notification to RabbitMQ queues for delivery
// by a separate worker.
package notify
