// Package logger provides tagged, colorized console output for the flipper.
package logger

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Info prints an informational message with a tag.
func Info(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorCyan, tag, colorReset, msg)
}

// Success prints a success message with a tag.
func Success(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorGreen, tag, colorReset, msg)
}

// Warn prints a warning message with a tag.
func Warn(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorYellow, tag, colorReset, msg)
}

// Error prints an error message with a tag.
func Error(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorRed, tag, colorReset, msg)
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("%s%s╔══════════════════════════════════╗%s\n", colorBold, colorCyan, colorReset)
	fmt.Printf("%s%s║   SkyBlock AH Flipper  %-9s ║%s\n", colorBold, colorCyan, version, colorReset)
	fmt.Printf("%s%s╚══════════════════════════════════╝%s\n", colorBold, colorCyan, colorReset)
}

// Section prints a section header.
func Section(title string) {
	fmt.Printf("\n%s── %s ──%s\n", colorGray, title, colorReset)
}

// Stats prints a labeled count, grouped with thousands separators.
func Stats(key string, value int) {
	fmt.Printf("  %s%-16s%s %s\n", colorGray, key, colorReset, humanize.Comma(int64(value)))
}

// Server prints the listen address once the HTTP server is up.
func Server(addr string) {
	fmt.Printf("%s[Server]%s Listening on %shttp://%s%s\n", colorGreen, colorReset, colorBold, addr, colorReset)
}
