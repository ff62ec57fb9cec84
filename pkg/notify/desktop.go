package notify

import (
	"github.com/gen2brain/beeep"
)

var (
	beeepNotify = beeep.Notify
	beeepAlert  = beeep.Alert
)

// Desktop shows a desktop notification and returns immediately.
type Desktop struct{}

// Notify implements alert.Notifier.
func (*Desktop) Notify(message string) {
	if err := beeepNotify(Title, message, ""); err != nil {
		logFailure(BackendDesktop, err)
	}
}

// fallbackModal is used where no native modal dialog is wired. beeep alerts
// are still shown with the highest urgency the platform supports.
type fallbackModal struct{}

func (*fallbackModal) Notify(message string) {
	if err := beeepAlert(Title, message, ""); err != nil {
		logFailure(BackendModal, err)
	}
}
