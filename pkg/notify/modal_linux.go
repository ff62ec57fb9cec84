//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/alert"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	urgencyCritical = byte(2)
	// expireNever keeps the notification on screen until the user closes it.
	expireNever = int32(0)
)

// dbusObject is the subset of dbus.BusObject used here.
type dbusObject interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// modal sends a critical, non-expiring notification over the session bus.
// Freedesktop servers have no blocking dialogs, so this is the closest
// equivalent.
type modal struct {
	obj dbusObject
}

func newModal() alert.Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		logrus.WithError(err).Debug("D-Bus session bus unavailable, falling back to beeep")
		return &fallbackModal{}
	}

	return &modal{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}
}

func (m *modal) Notify(message string) {
	hints := map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(urgencyCritical),
		"resident": dbus.MakeVariant(true),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := m.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"battnotify",
		uint32(0),
		"battery-caution",
		Title,
		message,
		[]string{},
		hints,
		expireNever,
	)
	if call.Err != nil {
		logFailure(BackendModal, call.Err)
	}
}
