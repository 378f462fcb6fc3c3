// internal/storage/object/interface_test.go
package object

// Compile-time interface compliance checks
var (
	_ Store = (*LocalFS)(nil)
	_ Store = (*S3Store)(nil)
)
