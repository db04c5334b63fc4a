// Package s3flow provides named Amazon S3 actions that read their inputs from a shared
// key-value context and store the raw service response back into it.
//
// Actions can be executed one at a time or as a sequential flow loaded from YAML:
//
//	srv, _ := s3flow.New(ctx, s3flow.WithRegion("us-west-2"))
//	session := srv.NewState(map[string]interface{}{"AWS.S3.BucketName": "my-bucket"})
//	_, err := srv.Execute(ctx, "createBucket", session)
//	output, _ := session.Get("AWS.S3.createBucket.result")
//
// Every action maps to exactly one S3 call. Failures are returned wrapped in
// *executor.ActionError and are never retried beyond the SDK retryer.
package s3flow
