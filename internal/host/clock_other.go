// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !linux

package host

// SystemClock returns the preferred Clock for this platform.
func SystemClock() Clock {
	return MonoClock{}
}
