// Package launcher bootstraps the chat app.
//
// A Launcher is built from the validated server configuration, an injected
// Server and the request-fulfillment handler. Run spawns a detached goroutine
// that sleeps for the configured delay and then opens the chat page in the
// default browser, and blocks in Server.Start until the server exits.
//
// The browser launch is best effort: its failure is logged and never reaches
// the server. There is no ordering guarantee between the listener coming up
// and the browser opening; the delay only makes readiness likely.
package launcher
