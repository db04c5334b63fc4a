// Package executor runs named actions against a key-value context. It binds context
// values to the typed method input, invokes the service method and stores the output
// under the action result key. Each run is recorded as an execution and, after the
// method returns, passed to an optional listener.
package executor
