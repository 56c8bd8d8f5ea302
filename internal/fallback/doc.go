// Package fallback implements the runtime entry point the hosting platform
// requires. The platform's static routing is expected to intercept every
// real request before it reaches this process, so the handler's only job is
// to answer with a fixed diagnostic string and record that it was reached.
package fallback
