package common

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Box is a decoded JSON object. Use Decode to read it into a typed struct.
type Box map[string]any

// Decode copies the box into out, matching fields by their json tags.
func (b Box) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(b))
}

// SaveJSON writes data as JSON indented with four spaces.
func (u *Utils) SaveJSON(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return err
	}

	u.logger.Info(fmt.Sprintf("json file saved at: %s", path))
	return nil
}

// LoadJSON reads a JSON object from path.
func (u *Utils) LoadJSON(path string) (Box, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var box Box
	if err := json.Unmarshal(content, &box); err != nil {
		return nil, err
	}

	u.logger.Info(fmt.Sprintf("json file loaded successfully from: %s", path))
	return box, nil
}
