// Package flowtest provides helpers for testing back-pressured streams:
// a recording Subscriber with terminal-event awaiting, and an OnRequest
// wrapper for asserting upstream demand traces.
package flowtest
