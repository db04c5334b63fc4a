package types

// State is the shared key-value context actions read their inputs from and write
// their results to. Keys are dotted strings such as "AWS.S3.BucketName"; the dots
// carry no structure, a key is matched literally.
type State interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}
