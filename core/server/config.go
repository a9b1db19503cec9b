package server

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server and the browser launch.
type Config struct {
	// Host is the address the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// StaticDir is the directory served under /static.
	StaticDir string `mapstructure:"static_dir" default:"./static"`
	// OpenBrowser controls whether the chat page is opened on startup.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// BrowserDelay is how long to wait before opening the browser,
	// so the listener is likely up first.
	BrowserDelay string `mapstructure:"browser_delay" default:"2s"`
}

// ChatPage is the static asset the browser is pointed at.
const ChatPage = "/static/str_chat.html"

// PortNumber parses the configured port. A non-numeric value is a
// configuration error, not a cue to fall back to the default.
func (c Config) PortNumber() (int, error) {
	p, err := strconv.Atoi(c.Port)
	if err != nil {
		return 0, fmt.Errorf("port %q is not a number", c.Port)
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("port %d is out of range", p)
	}
	return p, nil
}

// LaunchDelay parses the browser launch delay.
func (c Config) LaunchDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.BrowserDelay)
	if err != nil {
		return 0, fmt.Errorf("browser delay %q is not a duration", c.BrowserDelay)
	}
	if d < 0 {
		return 0, fmt.Errorf("browser delay %s is negative", d)
	}
	return d, nil
}

// TargetURL is the local URL of the chat page for the configured port.
func (c Config) TargetURL() (string, error) {
	p, err := c.PortNumber()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://localhost:%d%s", p, ChatPage), nil
}
