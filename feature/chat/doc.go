// Package chat provides the chat feature of the sample app.
//
// It contributes the request-fulfillment handler mounted on /ask and the
// routes that sit beside the static chat page.
//
// # HTTP Endpoints
//
//   - GET  /        : Redirects to the chat page.
//   - GET  /health  : Liveness probe.
//   - GET  /ask     : Answers a query passed as ?query=.
//   - POST /ask     : Answers a query passed as a JSON body.
package chat
