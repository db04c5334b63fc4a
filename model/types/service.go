package types

// Service groups related action methods, e.g. all S3 calls
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
