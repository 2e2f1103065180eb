//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

// Notify sends a desktop notification over the Freedesktop.org D-Bus notification service.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	timeout := opts.TimeoutMs
	if timeout == 0 {
		timeout = -1
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		opts.appName(), uint32(0), opts.IconPath, title, body, []string{}, map[string]dbus.Variant{}, timeout)
	return call.Err
}
