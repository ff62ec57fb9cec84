//go:build !darwin && !windows && !linux

package notify

import "github.com/charlie0129/battnotify/pkg/alert"

func newModal() alert.Notifier {
	return &fallbackModal{}
}
