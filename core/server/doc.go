// Package server holds the server section of the application configuration.
//
// It covers the listener (host, port), the static asset directory and the
// browser-launch behavior (whether to open the chat page and after what
// delay). The port is kept as the raw string from the environment; PortNumber
// performs the strict parse so that a misconfigured value surfaces as an
// error during startup instead of silently falling back to the default.
package server
