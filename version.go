package datagate

import _ "embed"

// Version is the release version of datagate.
//
//go:embed VERSION
var Version string
