// Package authctl implements the administrative command line. It talks to the
// credential store directly through the engine's admin service, so it works
// while the server is down.
package authctl
