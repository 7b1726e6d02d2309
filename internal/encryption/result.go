package encryption

// Result carries the outcome of one file operation from a worker to the
// printer goroutine. Either Error is set, or Output and OutputSize describe
// the file that was written.
type Result struct {
	Input      string
	Output     string
	OutputSize int64
	Error      error
}
