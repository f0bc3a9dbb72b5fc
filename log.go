// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

import "github.com/sirupsen/logrus"

// Log receives a Debug-level trace of every rebalancing step.
// It is silent by default; raise its level to see the trace.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// trace logs one rebalancing case at depth in the path being fixed.
func trace(op, rule string, depth int) {
	if !Log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	Log.WithFields(logrus.Fields{
		"op":    op,
		"case":  rule,
		"depth": depth,
	}).Debug("rebalance")
}
