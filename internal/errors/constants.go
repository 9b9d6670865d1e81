package errors

// Error message constants
const (
	ErrMsgFileNotFound   = "File not found"
	ErrMsgFileMalformed  = "File could not be decoded"
	ErrMsgFileEmpty      = "File contains no records"
	ErrMsgNameRequired   = "Name is required"
	ErrMsgWebsiteInvalid = "Official website is not a valid URL"
)
