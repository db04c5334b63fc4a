// Package s3 implements the "aws/s3" action service and the named S3 actions.
//
// Every service method performs one Amazon S3 SDK call (wait methods poll
// through the SDK waiter, upload uses the SDK managed uploader). SDK errors are
// returned unchanged; the package adds no retries and no input validation.
//
// Catalog returns the actions that bind those methods to context keys such as
// AWS.S3.BucketName and store results under AWS.S3Bucket.<action>.result.
package s3
