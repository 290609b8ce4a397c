// Package config loads restkit configuration from YAML files and the
// environment using viper, with optional .env support via godotenv.
//
// KitConfig bundles the logging and client transport sections; consumers
// with more sections embed it in their own struct and pass that to Load.
//
// # Example config.yml
//
//	name: "my-service"
//	environment: "production"
//	logging:
//	  level: "info"
//	  format: "json"
//	client:
//	  base_url: "https://api.example.com"
//	  timeout: 30s
//
// # Usage
//
//	var cfg config.KitConfig
//	if err := config.Load(&cfg, config.WithConfigFile("config.yml")); err != nil {
//	    return err
//	}
package config
