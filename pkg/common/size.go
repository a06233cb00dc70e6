package common

import (
	"fmt"
	"math"
	"os"
)

// FileSizeKB reports the size of a file as "~ N KB".
// N is bytes/1024 rounded half away from zero, so 1536 bytes is "~ 2 KB" and
// 2560 bytes is "~ 3 KB".
func FileSizeKB(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return FormatSizeKB(info.Size()), nil
}

// FormatSizeKB renders a byte count the way FileSizeKB does.
func FormatSizeKB(bytes int64) string {
	return fmt.Sprintf("~ %d KB", int64(math.Round(float64(bytes)/1024)))
}

// FileSizeKB is the Utils form of the package level FileSizeKB.
func (u *Utils) FileSizeKB(path string) (string, error) {
	return FileSizeKB(path)
}
