package launcher

import (
	"time"

	"github.com/dannygar/NLWeb/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Server is the blocking web server the launcher hands control to.
// It owns socket binding, request dispatch and its own shutdown.
type Server interface {
	Start(host string, port int, fulfill fiber.Handler) error
}

// OpenFunc instructs the operating system to open a URL in the user's
// default browser.
type OpenFunc func(url string) error

// Launcher boots the chat app: it points the browser at the chat page
// after a short delay and then blocks in the server until it stops.
type Launcher struct {
	srv     Server
	fulfill fiber.Handler
	log     *zap.Logger

	host  string
	port  int
	url   string
	delay time.Duration
	auto  bool
	open  OpenFunc
}

// New builds a launcher from the server configuration. The port and
// delay are parsed here once; a malformed value is rejected before any
// server work happens.
func New(cfg server.Config, srv Server, fulfill fiber.Handler, log *zap.Logger) (*Launcher, error) {
	port, err := cfg.PortNumber()
	if err != nil {
		return nil, err
	}
	delay, err := cfg.LaunchDelay()
	if err != nil {
		return nil, err
	}
	url, err := cfg.TargetURL()
	if err != nil {
		return nil, err
	}

	return &Launcher{
		srv:     srv,
		fulfill: fulfill,
		log:     log,
		host:    cfg.Host,
		port:    port,
		url:     url,
		delay:   delay,
		auto:    cfg.OpenBrowser,
		open:    browser.OpenURL,
	}, nil
}

// TargetURL is the chat page URL the browser will be pointed at.
func (l *Launcher) TargetURL() string {
	return l.url
}

// SetOpenFunc replaces the browser-open mechanism. Tests use this to
// observe the launch without touching the host OS.
func (l *Launcher) SetOpenFunc(fn OpenFunc) {
	l.open = fn
}

// Run schedules the delayed browser launch and blocks in the server
// until it stops, returning whatever the server returned. The browser
// task is fire and forget: if the process exits before the delay
// elapses it is simply discarded.
func (l *Launcher) Run() error {
	if l.auto {
		go l.openAfterDelay()
	}
	return l.srv.Start(l.host, l.port, l.fulfill)
}

// openAfterDelay waits long enough for the listener to likely be up,
// then opens the chat page. Failing to launch a browser (headless
// box, no display) is logged and otherwise ignored.
func (l *Launcher) openAfterDelay() {
	time.Sleep(l.delay)
	l.log.Info("Opening browser", zap.String("url", l.url))
	if err := l.open(l.url); err != nil {
		l.log.Warn("Could not open browser", zap.Error(err))
	}
}
