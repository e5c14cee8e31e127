// Package modules runs the long-lived servers of the application inside one
// errgroup.
package modules

import "lead_qualifier/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
