package s3

import (
	"github.com/viant/s3flow/model/action"
	astate "github.com/viant/s3flow/service/action/system/state"
)

// Context keys read by the catalog actions
const (
	KeyBucketName      = "AWS.S3.BucketName"
	KeyUploadFileName  = "AWS.S3.UploadFileName"
	KeyUploadBody      = "AWS.S3.UploadBody"
	KeyUploadStream    = "AWS.S3.UploadStream"
	KeyUploadSource    = "AWS.S3.UploadSource"
	KeyCopySource      = "AWS.S3.CopySource"
	KeyCopyDestination = "AWS.S3.CopyDestination"
	KeyDeleteFileName  = "AWS.S3.DeleteFileName"
	KeyDeleteFileNames = "AWS.S3.DeleteFileNames"
	KeyGetFileName     = "AWS.S3.GetFileName"
	KeyListMaxKeys     = "AWS.S3.ListMaxKeys"
	KeyWaitForObject   = "AWS.S3.WaitForObject"
)

// ResultKey returns the context key catalog action stores its result under
func ResultKey(actionName string) string {
	if actionName == "createBucket" {
		return "AWS.S3.createBucket.result"
	}
	return "AWS.S3Bucket." + actionName + ".result"
}

// Catalog returns named S3 actions
func Catalog() action.Actions {
	return action.Actions{
		newAction("createBucket", "createBucket", "Creates bucket AWS.S3.BucketName.").
			Bind(KeyBucketName, "Bucket"),
		newAction("uploadFileToBucket", "putObject", "Stores AWS.S3.UploadBody as AWS.S3.UploadFileName.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyUploadFileName, "Key").
			Bind(KeyUploadBody, "Body"),
		newAction("uploadStreamToBucket", "upload", "Streams AWS.S3.UploadStream, or the AWS.S3.UploadSource URL content, to AWS.S3.UploadFileName.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyUploadFileName, "Key").
			Bind(KeyUploadStream, "Body").
			Bind(KeyUploadSource, "Source"),
		newAction("copyObject", "copyObject", "Copies AWS.S3.CopySource to AWS.S3.CopyDestination.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyCopySource, "CopySource").
			Bind(KeyCopyDestination, "Key"),
		action.New("prepareDeleteAfterCopy", astate.Name, "copy").
			WithDescription("Sets AWS.S3.DeleteFileName to AWS.S3.CopySource.").
			Bind(KeyCopySource, "Value").
			WithResult(KeyDeleteFileName).
			WithResultField("Value"),
		newAction("deleteBucket", "deleteBucket", "Deletes bucket AWS.S3.BucketName.").
			Bind(KeyBucketName, "Bucket"),
		newAction("deleteObject", "deleteObject", "Deletes AWS.S3.DeleteFileName.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyDeleteFileName, "Key"),
		newAction("deleteObjects", "deleteObjects", "Deletes all AWS.S3.DeleteFileNames.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyDeleteFileNames, "Keys"),
		newAction("getObject", "getObject", "Retrieves AWS.S3.GetFileName.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyGetFileName, "Key"),
		newAction("listBuckets", "listBuckets", "Lists buckets."),
		newAction("listObjects", "listObjects", "Lists up to AWS.S3.ListMaxKeys objects of AWS.S3.BucketName.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyListMaxKeys, "MaxKeys"),
		newAction("waitForBucket", "waitForBucket", "Waits until AWS.S3.BucketName exists.").
			Bind(KeyBucketName, "Bucket"),
		newAction("waitForObject", "waitForObject", "Waits until AWS.S3.WaitForObject exists.").
			Bind(KeyBucketName, "Bucket").
			Bind(KeyWaitForObject, "Key"),
	}
}

func newAction(name, method, description string) *action.Action {
	return action.New(name, Name, method).
		WithDescription(description).
		WithResult(ResultKey(name))
}
