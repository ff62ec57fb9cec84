//go:build windows

package notify

import (
	"golang.org/x/sys/windows"

	"github.com/charlie0129/battnotify/pkg/alert"
)

const (
	mbOK              = 0x00000000
	mbIconInformation = 0x00000040
)

// modal shows a MessageBoxW and blocks until the user dismisses it.
type modal struct{}

func newModal() alert.Notifier {
	return &modal{}
}

func (*modal) Notify(message string) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		logFailure(BackendModal, err)
		return
	}
	caption, err := windows.UTF16PtrFromString(Title)
	if err != nil {
		logFailure(BackendModal, err)
		return
	}

	if _, err := windows.MessageBox(0, text, caption, mbOK|mbIconInformation); err != nil {
		logFailure(BackendModal, err)
	}
}
