package platform

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"syscall"
)

// Windows error codes returned when another process holds the file
const (
	winErrorSharingViolation syscall.Errno = 32
	winErrorLockViolation    syscall.Errno = 33
)

// IsFileOpen reports whether another process currently holds filePath open.
//
// On macOS this asks lsof; on Windows it tries to open the file for writing.
// The check is best effort: other platforms and any internal failure report
// false.
func IsFileOpen(filePath string) bool {
	switch runtime.GOOS {
	case OSDarwin:
		return isOpenLsof(filePath)
	case OSWindows:
		return isOpenExclusive(filePath)
	default:
		return false
	}
}

// isOpenLsof treats a zero lsof exit status as "some process has it open"
func isOpenLsof(filePath string) bool {
	return exec.Command(LsofCommand, filePath).Run() == nil
}

// isOpenExclusive treats a permission or sharing error on a read/write open as "open"
func isOpenExclusive(filePath string) bool {
	f, err := os.OpenFile(filePath, os.O_RDWR, 0)
	if err == nil {
		_ = f.Close()
		return false
	}
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == winErrorSharingViolation || errno == winErrorLockViolation
	}
	return false
}

// System bundles the OS collaborators the pipeline needs.
type System struct{}

// IsFileOpen reports whether filePath is held open by another process
func (System) IsFileOpen(filePath string) bool {
	return IsFileOpen(filePath)
}

// Open opens filePath with its default application
func (System) Open(filePath string) error {
	return OpenFileWithDefaultApp(filePath)
}
