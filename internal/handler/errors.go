// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when no listen address is
// configured: the selector has no other transport.
var errNoHTTPAddress = errors.New("server http address is not configured")
