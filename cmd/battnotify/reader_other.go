//go:build !darwin

package main

import (
	"fmt"

	"github.com/charlie0129/battnotify/pkg/config"
	"github.com/charlie0129/battnotify/pkg/reader"
)

func newReader(backend config.ReaderBackend) (reader.Reader, func(), error) {
	if backend == config.ReaderSMC {
		return nil, nil, reader.NewError(reader.ErrManagerUnavailable, fmt.Errorf("the %s reader is only available on macOS", backend))
	}

	return reader.NewSystem(), func() {}, nil
}
