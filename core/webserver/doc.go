// Package webserver implements the server component behind the launcher.
//
// It assembles a Fiber app with ray-id tagging, request logging and the
// /static mount, loads registered features through the loader, and exposes
// the blocking Start(host, port, fulfill) operation the launcher expects.
// The fulfillment handler is mounted on /ask without inspection.
package webserver
