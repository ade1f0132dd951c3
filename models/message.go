package models

import "time"

// CloudMessage is a cloud-to-device message received by a device. The hub
// keeps it locked until it is settled with LockToken.
type CloudMessage struct {
	LockToken      string
	MessageID      string
	CorrelationID  string
	To             string
	SequenceNumber int64
	EnqueuedTime   time.Time
	DeliveryCount  int
	// Properties holds the application properties (iothub-app-*) keyed by
	// lower-case name without the prefix.
	Properties map[string]string
	Body       []byte
}

// Telemetry is a sensor reading sent by the device client.
type Telemetry struct {
	SensorID    string    `json:"sensorId"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Date        time.Time `json:"date"`
}
