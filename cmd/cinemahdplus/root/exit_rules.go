package root

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

const (
	msgMissingCheckPath = "Missing file path after --check"
	msgChecksumFailed   = "Failed to compute SHA-256: "
)

type exitError struct {
	code int
	msg  string
}

func (e exitError) Error() string { return e.msg }
func (e exitError) ExitCode() int { return e.code }

func usageError(msg string) error {
	return exitError{code: exitCodeUsage, msg: msg}
}

func failure(msg string) error {
	return exitError{code: exitCodeFailure, msg: msg}
}

// ExitCode maps an Execute result to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}
	if ec, ok := err.(interface{ ExitCode() int }); ok && ec.ExitCode() != 0 {
		return ec.ExitCode()
	}
	return exitCodeFailure
}
