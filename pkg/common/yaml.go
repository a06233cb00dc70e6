package common

import (
	"fmt"
	"os"

	"github.com/aretw0/datagate/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ReadYAML decodes the YAML document at path into out.
// It returns domain.ErrEmptyConfig when the document is empty or null.
func (u *Utils) ReadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if isEmptyDocument(&doc) {
		return fmt.Errorf("%s: %w", path, domain.ErrEmptyConfig)
	}
	if err := doc.Decode(out); err != nil {
		return err
	}

	u.logger.Info(fmt.Sprintf("yaml file: %s loaded successfully", path))
	return nil
}

func isEmptyDocument(doc *yaml.Node) bool {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return true
	}
	root := doc.Content[0]
	return root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null"
}
