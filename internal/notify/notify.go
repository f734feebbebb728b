// Package notify delivers a toast through the freedesktop notification
// service when the HUD renderer is unavailable. Styling is lost, but the
// message is not.
package notify

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/toasthud/toasthud/internal/toast"
)

const (
	notificationService   = "org.freedesktop.Notifications"
	notificationObject    = "/org/freedesktop/Notifications"
	notificationInterface = "org.freedesktop.Notifications"
)

// Send delivers p.Message via org.freedesktop.Notifications and returns
// the notification ID assigned by the daemon. Only the message, icon, and
// display duration survive the translation.
func Send(p *toast.Params) (uint32, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	timeout := int32(p.EffectiveDisplayDuration() / time.Millisecond)

	obj := conn.Object(notificationService, notificationObject)
	call := obj.Call(notificationInterface+".Notify", 0,
		"toasthud",                // app_name
		uint32(0),                 // replaces_id
		p.Icon,                    // app_icon
		p.Message,                 // summary
		"",                        // body
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		timeout,                   // expire_timeout
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notification service call failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("failed to read notification id: %w", err)
	}
	return id, nil
}

// Available reports whether the freedesktop notification service can be
// reached on the session bus.
func Available() bool {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false
	}

	var owner string
	err = conn.BusObject().Call("org.freedesktop.DBus.GetNameOwner", 0, notificationService).Store(&owner)
	return err == nil && owner != ""
}
