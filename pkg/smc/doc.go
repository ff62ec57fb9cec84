// Package smc reads battery state from the Apple System Management
// Controller. It is only built on darwin; other platforms use the
// reader.System backend.
package smc
