// Package cli implements the interactive TerraBond terminal client.
//
// The App type wires configuration, the local session database, the HTTP
// service clients and the session manager together, then hands control to a
// read-eval-print loop. Every command is bound to a route, and the route's
// access guard is consulted before the command runs, so the terminal client
// enforces the same navigation rules as the web frontend.
package cli
