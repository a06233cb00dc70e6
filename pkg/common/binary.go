package common

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveBinary serializes v with encoding/gob. The format is Go specific and not meant to
// be portable across incompatible type changes.
func (u *Utils) SaveBinary(path string, v any) error {
	if err := writeGob(path, v); err != nil {
		return err
	}
	u.logger.Info(fmt.Sprintf("binary file saved at: %s", path))
	return nil
}

// LoadBinary decodes a file written by SaveBinary into out, which must be a pointer.
func (u *Utils) LoadBinary(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(out); err != nil {
		return err
	}

	u.logger.Info(fmt.Sprintf("binary file loaded from: %s", path))
	return nil
}

func writeGob(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gob.NewEncoder(f).Encode(v)
}
