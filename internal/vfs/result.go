package vfs

// Result is the narrow, internal VFS-layer result taxonomy (spec.md
// §4.8, §7).
type Result string

const (
	ResultSuccess                Result = "success"
	ResultFileDoesNotExist       Result = "file-does-not-exist"
	ResultSourceFileDoesNotExist Result = "source-file-does-not-exist"
	ResultNotInPackage           Result = "not-in-package"
	ResultPackageDoesNotExist    Result = "package-does-not-exist"
	ResultReadError              Result = "read-error"
	ResultWriteError             Result = "write-error"
	ResultInternalFailure        Result = "internal-failure"
)
