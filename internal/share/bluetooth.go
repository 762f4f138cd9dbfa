// Package share holds the boundary to peer-to-peer sharing. Only a stub exists:
// it logs the intent and later surfaces a placeholder notification.
package share

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

// DefaultDiscoveryDelay is how long the stub pretends to scan for devices
const DefaultDiscoveryDelay = 1000 * time.Millisecond

// Sharer sends a resource to a nearby device
type Sharer interface {
	Share(title string)
}

// BluetoothStub simulates device discovery without any transfer
type BluetoothStub struct {
	scheduler schedule.Scheduler
	delay     time.Duration
	notify    func(title string)
	log       logrus.FieldLogger
}

// NewBluetoothStub creates the stub. notify receives the resource title once
// the fake discovery finishes.
func NewBluetoothStub(scheduler schedule.Scheduler, delay time.Duration, notify func(title string), logger logrus.FieldLogger) *BluetoothStub {
	if delay <= 0 {
		delay = DefaultDiscoveryDelay
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BluetoothStub{
		scheduler: scheduler,
		delay:     delay,
		notify:    notify,
		log:       logger.WithField("component", "bluetooth"),
	}
}

// Share logs the intent and schedules the placeholder notification
func (b *BluetoothStub) Share(title string) {
	b.log.WithField("title", title).Info("sharing resource")

	b.scheduler.After(b.delay, func() {
		b.log.WithField("title", title).Debug("device discovery finished")
		if b.notify != nil {
			b.notify(title)
		}
	})
}
