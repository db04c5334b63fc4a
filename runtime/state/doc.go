// Package state implements the shared key-value context actions read their
// inputs from and write their results to.
//
// Keys are plain dotted strings; "AWS.S3.BucketName" is a single key, not a
// path into a nested structure. Result keys may embed other keys with ${key}.
package state
