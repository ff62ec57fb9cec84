package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/notify"
	"github.com/charlie0129/battnotify/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		Notifier: ptr.To(string(notify.BackendModal)),
		Reader:   ptr.To(string(ReaderSystem)),
		LogLevel: ptr.To(""),
	}
)

// DefaultPath returns $XDG_CONFIG_HOME/battnotify/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "battnotify", "config.toml")
}

var _ Config = &File{}

// File is a Config backed by a TOML file. A missing or empty file yields
// the defaults.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// NewFile loads the config at configPath.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// NewFileFromConfig wraps an in-memory config. A nil c means defaults.
func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	return &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}
}

// RawFileConfig is the on-disk representation.
type RawFileConfig struct {
	Notifier *string `koanf:"notifier"`
	Reader   *string `koanf:"reader"`
	LogLevel *string `koanf:"log_level"`
}

func (f *File) Notifier() notify.Backend {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return notify.Backend(ptr.Deref(f.c.Notifier, *defaultFileConfig.Notifier))
}

func (f *File) Reader() ReaderBackend {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return ReaderBackend(ptr.Deref(f.c.Reader, *defaultFileConfig.Reader))
}

func (f *File) LogLevel() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return ptr.Deref(f.c.LogLevel, *defaultFileConfig.LogLevel)
}

// Load reads and validates the file.
func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(f.filepath), toml.Parser()); err != nil {
		return pkgerrors.Wrapf(err, "failed to parse config file %s", f.filepath)
	}

	conf := RawFileConfig{}
	if err := k.Unmarshal("", &conf); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}

	if err := conf.validate(); err != nil {
		return pkgerrors.Wrapf(err, "invalid config file %s", f.filepath)
	}

	f.c = &conf

	return nil
}

func (c *RawFileConfig) validate() error {
	if c.Notifier != nil {
		if _, err := notify.ParseBackend(*c.Notifier); err != nil {
			return err
		}
	}

	if c.Reader != nil {
		valid := false
		for _, r := range ReaderBackends {
			if string(r) == *c.Reader {
				valid = true
				break
			}
		}
		if !valid {
			return pkgerrors.Errorf("unknown reader %q, valid readers are %v", *c.Reader, ReaderBackends)
		}
	}

	if c.LogLevel != nil && *c.LogLevel != "" {
		if _, err := logrus.ParseLevel(*c.LogLevel); err != nil {
			return err
		}
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"path":     f.filepath,
		"notifier": f.Notifier(),
		"reader":   f.Reader(),
		"logLevel": f.LogLevel(),
	}
}
