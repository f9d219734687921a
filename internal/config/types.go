package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port     string
	LogLevel string
	Service  ServiceConfig
	CORS     CORSConfig
}

// ServiceConfig points at the OpenLigaDB web service.
type ServiceConfig struct {
	WSDLURL  string
	Endpoint string // overrides the address in the service description when set
	Timeout  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}
