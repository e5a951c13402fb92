/*
Package config provides typed engine configuration loaded from YAML or
JSON files.

# Basic Usage

Load a config file and build the pieces it describes:

	cfg, err := config.FromFile("exprtree.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	st, err := cfg.OpenStore()

A config file looks like:

	namespace: reports
	store:
	  driver: sqlite
	  path: ./expressions.db
	log:
	  level: debug
	  format: json
	metrics: true
	tracing: true

Missing keys keep their Default() values. FromYAML, FromJSON, and
FromFile validate the result; contradictions such as a sqlite driver
without a path are reported as errors.
*/
package config
