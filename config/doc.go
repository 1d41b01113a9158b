// Package config loads router configuration from YAML or TOML files,
// with environment-variable overrides under the LLMROUTER_ prefix.
//
//	cfg, err := config.Load("router.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.LoadFromEnv()
//
//	cat, _ := cfg.Catalog()
//
// A config file describes routing behavior and, optionally, the model
// catalog; when no models are listed the built-in catalog applies:
//
//	router:
//	  default_model: deepseek-v3
//	  classifier_threshold: 0.8
//	  session_idle_timeout: 30m
//	models:
//	  - id: deepseek-v3
//	    input_per_1k: 1.25
//	    output_per_1k: 1.25
//	    capabilities: [general, coding]
//	    aliases: [v3]
//
// The default model must resolve in the configured catalog; Load
// returns an error otherwise, so a misconfigured router fails at
// startup rather than at routing time.
//
// Watch follows the file and delivers each valid reload:
//
//	updates, err := config.Watch(ctx, "router.yaml")
//	for cfg := range updates {
//	    engine.Reconfigure(cfg)
//	}
package config
