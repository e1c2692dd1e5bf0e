package model

// ErrorKind is the closed classification of request failures. Front-ends
// switch on it instead of pattern-matching error strings. The zero value
// means no error.
type ErrorKind string

const (
	ErrorKindNone           ErrorKind = ""
	ErrorKindInvalidInput   ErrorKind = "invalid_input"
	ErrorKindUnsupportedURL ErrorKind = "unsupported_url"
	ErrorKindNetwork        ErrorKind = "network"
	ErrorKindMissingBinary  ErrorKind = "missing_binary"
	ErrorKindFilesystem     ErrorKind = "filesystem"
	ErrorKindDownloadFailed ErrorKind = "download_failed"
)

// String returns the string representation of ErrorKind
func (ek ErrorKind) String() string {
	return string(ek)
}
