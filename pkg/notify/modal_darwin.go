//go:build darwin

package notify

import (
	"github.com/progrium/darwinkit/macos/appkit"

	"github.com/charlie0129/battnotify/pkg/alert"
)

// modal shows an NSAlert. It must be called on the main thread, which is
// why main locks its goroutine to the OS thread.
type modal struct{}

func newModal() alert.Notifier {
	// NSAlert needs the shared application to exist.
	appkit.Application_SharedApplication()
	return &modal{}
}

func (m *modal) Notify(message string) {
	dialog := appkit.NewAlert()
	dialog.SetIcon(appkit.Image_ImageWithSystemSymbolNameAccessibilityDescription("battery.25", "battery"))
	dialog.SetAlertStyle(appkit.AlertStyleInformational)
	dialog.SetMessageText(Title)
	dialog.SetInformativeText(message)
	dialog.AddButtonWithTitle("OK")
	dialog.RunModal()
}
