// Package testing provides test support for the Boreal toolkit: a
// controllable clock for the task scheduler's delay queue and a recording
// frame context for draw and culling assertions.
package testing
