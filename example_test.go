package datagate_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/datagate"
)

func Example() {
	dir, _ := os.MkdirTemp("", "datagate-example")
	defer os.RemoveAll(dir)

	data := filepath.Join(dir, "data.csv")
	status := filepath.Join(dir, "validation", "status.txt")
	configPath := filepath.Join(dir, "config.yaml")
	schemaPath := filepath.Join(dir, "schema.yaml")

	_ = os.WriteFile(data, []byte("id,label\n1,cat\n2,dog\n"), 0644)
	_ = os.WriteFile(configPath, []byte(
		"artifacts_root: "+dir+"\n"+
			"data_validation:\n"+
			"  root_dir: "+filepath.Dir(status)+"\n"+
			"  unzip_data_dir: "+data+"\n"+
			"  STATUS_FILE: "+status+"\n"), 0644)
	_ = os.WriteFile(schemaPath, []byte("COLUMNS:\n  id: int64\n  label: object\n  score: float64\n"), 0644)

	gate, err := datagate.New(configPath, schemaPath)
	if err != nil {
		fmt.Println(err)
		return
	}

	valid, err := gate.Validate(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid:", valid)

	content, _ := os.ReadFile(status)
	fmt.Println(string(content))
	// Output:
	// valid: false
	// Validation status: False
	// Missing columns: ['score']
}
