package file

import (
	"os"
)

// Append writes data to the end of the file at path with a single write. The file
// is created with mode 0644 if it doesn't exist.
func Append(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
