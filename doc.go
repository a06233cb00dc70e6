/*
Package datagate is a data-quality gate for machine-learning projects.

It checks that a tabular dataset has every column its schema declares, with exactly the
declared dtype, and records the verdict in a plain-text status file that later pipeline
stages can gate on.

# Concept

A project keeps two YAML documents: config.yaml says where the data and the status file
live, schema.yaml lists the expected columns and dtypes. The Gate reads both, loads the
data, compares it against the schema and writes the status file:

	Validation status: False
	Missing columns: ['a', 'b']
	Data type mismatches found: ['c: expected object, got int64']

A dataset that does not conform is an outcome, not an error. Errors are reserved for data
that cannot be read at all, in which case no status file is written.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/datagate"
	)

	func main() {
		gate, err := datagate.New("config/config.yaml", "schema.yaml")
		if err != nil {
			log.Fatal(err)
		}
		defer gate.Close()

		valid, err := gate.Validate(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		if !valid {
			log.Fatal("dataset does not match schema")
		}
	}

# Observability

Pass WithLogger to receive structured logs and WithRegisterer to export Prometheus
metrics. When config.yaml has a redis section, each report is also mirrored to Redis.
*/
package datagate
