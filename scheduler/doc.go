// Package scheduler provides the execution-context capability the flow
// package hops onto: schedule a unit of work for later sequential execution,
// and cancel pending scheduled work.
//
// A Scheduler hands out Workers. Each Worker guarantees its tasks run one at
// a time, in submission order. NewSerial backs each worker with a dedicated
// goroutine; Trampoline runs tasks inline on the calling goroutine for code
// that must not cross an execution context.
package scheduler
