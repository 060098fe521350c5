//go:build unix

package audit

import (
	"os"

	"golang.org/x/sys/unix"
)

func isExecutable(p string, _ os.FileInfo) bool {
	return unix.Access(p, unix.X_OK) == nil
}
