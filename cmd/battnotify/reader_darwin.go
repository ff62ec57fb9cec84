//go:build darwin

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/config"
	"github.com/charlie0129/battnotify/pkg/reader"
	"github.com/charlie0129/battnotify/pkg/smc"
)

func newReader(backend config.ReaderBackend) (reader.Reader, func(), error) {
	if backend != config.ReaderSMC {
		return reader.NewSystem(), func() {}, nil
	}

	r, err := smc.NewReader()
	if err != nil {
		return nil, nil, err
	}

	return r, func() {
		if err := r.Close(); err != nil {
			logrus.Errorf("failed to close smc connection: %v", err)
		}
	}, nil
}
