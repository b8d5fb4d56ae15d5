// Package config provides configuration parsing for treeseq tooling.
//
// The configuration is stored in treeseq.json (or treeseq.yaml /
// treeseq.yml) at the project root. It controls logging and the defaults
// the CLI passes to the metrics and tracing middleware.
//
// # Configuration File Structure
//
//	{
//	  "logLevel": "debug",
//	  "logFormat": "json",
//	  "metrics": {
//	    "namespace": "myapp"
//	  },
//	  "tracing": {
//	    "tracerName": "myapp-ui"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.Logger(os.Stderr)
package config
