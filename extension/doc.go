// Package extension provides the run-time registry of action services and
// named actions.
//
// A service (for example "aws/s3") exposes typed methods; a named action
// (for example "createBucket") binds one of those methods to context keys.
// The registry is normally populated through the root s3flow package,
// therefore most applications do not need to import this package directly.
package extension
