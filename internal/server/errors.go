// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoTransport      = errors.New("no transport configured: an HTTP address and handler are required")
	errTransportMissing = errors.New("server has no transport to run")
)
