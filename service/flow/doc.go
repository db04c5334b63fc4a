// Package flow loads flow definitions from any afs supported URL and runs their steps
// sequentially against a single context.
package flow
