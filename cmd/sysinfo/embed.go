package main

import _ "embed"

// embeddedConfig holds the YAML configuration embedded at build time.
// Packagers may overwrite sysinfo.yaml before compiling to ship other defaults.
//
//go:embed sysinfo.yaml
var embeddedConfig []byte
