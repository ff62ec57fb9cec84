package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/battnotify/pkg/notify"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		name         string
		content      *string
		wantNotifier notify.Backend
		wantReader   ReaderBackend
		wantLevel    string
		wantErr      bool
	}{
		{
			name:         "missing file uses defaults",
			content:      nil,
			wantNotifier: notify.BackendModal,
			wantReader:   ReaderSystem,
		},
		{
			name:         "empty file uses defaults",
			content:      strPtr("  \n"),
			wantNotifier: notify.BackendModal,
			wantReader:   ReaderSystem,
		},
		{
			name:         "all keys",
			content:      strPtr("notifier = \"desktop\"\nreader = \"smc\"\nlog_level = \"debug\"\n"),
			wantNotifier: notify.BackendDesktop,
			wantReader:   ReaderSMC,
			wantLevel:    "debug",
		},
		{
			name:         "partial",
			content:      strPtr("notifier = \"log\"\n"),
			wantNotifier: notify.BackendLog,
			wantReader:   ReaderSystem,
		},
		{
			name:    "unknown notifier",
			content: strPtr("notifier = \"toast\"\n"),
			wantErr: true,
		},
		{
			name:    "unknown reader",
			content: strPtr("reader = \"acpi\"\n"),
			wantErr: true,
		},
		{
			name:    "bad log level",
			content: strPtr("log_level = \"loud\"\n"),
			wantErr: true,
		},
		{
			name:    "malformed toml",
			content: strPtr("notifier = \n"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "absent.toml")
			if tt.content != nil {
				p = writeConfig(t, *tt.content)
			}

			f, err := NewFile(p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNotifier, f.Notifier())
			assert.Equal(t, tt.wantReader, f.Reader())
			assert.Equal(t, tt.wantLevel, f.LogLevel())
		})
	}
}

func TestFile_Reload(t *testing.T) {
	p := writeConfig(t, "notifier = \"log\"\n")
	f, err := NewFile(p)
	require.NoError(t, err)
	assert.Equal(t, notify.BackendLog, f.Notifier())

	require.NoError(t, os.WriteFile(p, []byte("notifier = \"desktop\"\n"), 0o600))
	require.NoError(t, f.Load())
	assert.Equal(t, notify.BackendDesktop, f.Notifier())
}

func TestNewFileFromConfig(t *testing.T) {
	f := NewFileFromConfig(nil, "")
	assert.Equal(t, notify.BackendModal, f.Notifier())
	assert.Equal(t, ReaderSystem, f.Reader())

	fields := f.LogrusFields()
	assert.Equal(t, notify.BackendModal, fields["notifier"])
	assert.Equal(t, ReaderSystem, fields["reader"])
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "battnotify", filepath.Base(filepath.Dir(DefaultPath())))
}

func strPtr(s string) *string { return &s }
