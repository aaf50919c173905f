// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-toml-selector/internal/adapter"
	"github.com/MKhiriev/go-toml-selector/internal/app"
)

// unreachableMarkers match transport failures that reach us as plain text.
var unreachableMarkers = []string{"connection refused", "no such host", "network is unreachable", "i/o timeout"}

// humanizeError turns backend failures into what the overlay shows. Any
// failure to reach the selector server collapses into one message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, adapter.ErrBadGateway) {
		return app.MsgServerUnreachable
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, marker := range unreachableMarkers {
		if strings.Contains(lower, marker) {
			return app.MsgServerUnreachable
		}
	}
	return msg
}
