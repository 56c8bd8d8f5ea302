// Package health exposes the readiness endpoint probed by the hosting
// platform's process supervisor.
package health
