package s3

import "github.com/viant/s3flow/model/action"

// Context keys read by the legacy actions
const (
	LegacyKeyBucketName      = "AWS.S3BucketName"
	LegacyKeyUploadFileName  = "AWS.S3UploadFileName"
	LegacyKeyUploadBody      = "AWS.S3UploadBody"
	LegacyKeyUploadStream    = "AWS.S3UploadStream"
	LegacyKeyUploadSource    = "AWS.S3UploadSource"
	LegacyKeyCopySource      = "AWS.S3CopySource"
	LegacyKeyCopyDestination = "AWS.S3CopyDestination"
	LegacyKeyDeleteFileName  = "AWS.S3DeleteFileName"
	LegacyKeyDeleteFileNames = "AWS.S3DeleteFileNames"
	LegacyKeyGetFileName     = "AWS.S3GetFileName"
	LegacyKeyListMaxKeys     = "AWS.S3ListMaxKeys"
	LegacyKeyWaitForObject   = "AWS.S3WaitForObject"
)

const legacyPrefix = "AWS.S3Bucket.${" + LegacyKeyBucketName + "}."

// LegacyCatalog returns the S3 actions of the earlier naming scheme; result keys embed
// the bucket (and object) name.
func LegacyCatalog() action.Actions {
	return action.Actions{
		action.New("createS3Bucket", Name, "createBucket").
			Bind(KeyBucketName, "Bucket").
			WithResult("AWS.S3.Bucket.${" + KeyBucketName + "}"),
		action.New("uploadFileToS3Bucket", Name, "putObject").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyUploadFileName, "Key").
			Bind(LegacyKeyUploadBody, "Body").
			WithResult(legacyPrefix + "uploadFileToS3Bucket.${" + LegacyKeyUploadFileName + "}"),
		action.New("uploadStreamToS3Bucket", Name, "upload").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyUploadFileName, "Key").
			Bind(LegacyKeyUploadStream, "Body").
			Bind(LegacyKeyUploadSource, "Source").
			WithResult(legacyPrefix + "uploadStreamToS3Bucket.${" + LegacyKeyUploadFileName + "}"),
		action.New("copyS3Object", Name, "copyObject").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyCopySource, "CopySource").
			Bind(LegacyKeyCopyDestination, "Key").
			WithResult(legacyPrefix + "copyS3Object.${" + LegacyKeyCopyDestination + "}"),
		action.New("deleteS3Bucket", Name, "deleteBucket").
			Bind(LegacyKeyBucketName, "Bucket").
			WithResult(legacyPrefix + "deleteS3Bucket"),
		action.New("deleteS3Object", Name, "deleteObject").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyDeleteFileName, "Key").
			WithResult(legacyPrefix + "deleteS3Object.${" + LegacyKeyDeleteFileName + "}"),
		action.New("deleteS3Objects", Name, "deleteObjects").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyDeleteFileNames, "Keys").
			WithResult(legacyPrefix + "deleteS3Objects"),
		action.New("getS3Object", Name, "getObject").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyGetFileName, "Key").
			WithResult(legacyPrefix + "getS3Object.${" + LegacyKeyGetFileName + "}"),
		action.New("listS3Buckets", Name, "listBuckets").
			WithResult("AWS.S3Bucket.listS3Buckets"),
		action.New("listS3Objects", Name, "listObjects").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyListMaxKeys, "MaxKeys").
			WithResult(legacyPrefix + "listS3Objects"),
		action.New("waitForS3Bucket", Name, "waitForBucket").
			Bind(LegacyKeyBucketName, "Bucket").
			WithResult(legacyPrefix + "waitForS3Bucket"),
		action.New("waitForS3Object", Name, "waitForObject").
			Bind(LegacyKeyBucketName, "Bucket").
			Bind(LegacyKeyWaitForObject, "Key").
			WithResult(legacyPrefix + "waitForS3Object"),
	}
}
