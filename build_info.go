package main

import "strings"

// buildVersion and buildTime can be overridden at build time with:
//
//	go build -ldflags="-X main.buildVersion=v1.2.3 -X main.buildTime=2025-01-02T15:04:05Z"
var (
	buildVersion = ""
	buildTime    = ""
)

func buildVersionString() string {
	v := strings.TrimSpace(buildVersion)
	if v == "" {
		return "dev"
	}
	return v
}
