package models

import (
	"fmt"
	"strings"
)

// Variant selects which health entry point the service exposes.
// The ping variant serves GET /ping, the root variant serves GET /.
type Variant string

const (
	VariantPing Variant = "ping"
	VariantRoot Variant = "root"
)

// Health messages returned by each variant. They never change between requests.
const (
	PingMessage = "AI Service up!"
	RootMessage = "AI Service is running"
)

const (
	DefaultServiceName    = "AI Service"
	DefaultServiceVersion = "1.0.0"
)

// ServiceMetadata describes the running service.
// Set once at startup and only read when generating API documentation.
type ServiceMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

// ParseVariant converts a configuration string into a Variant.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantPing, VariantRoot:
		return v, nil
	default:
		return "", fmt.Errorf("invalid service variant %q: must be %q or %q", s, VariantPing, VariantRoot)
	}
}

// String returns the variant name
func (v Variant) String() string {
	return string(v)
}

// Path returns the route the variant's health handler is mounted on
func (v Variant) Path() string {
	if v == VariantRoot {
		return "/"
	}
	return "/ping"
}

// Message returns the fixed health message for the variant
func (v Variant) Message() string {
	if v == VariantRoot {
		return RootMessage
	}
	return PingMessage
}

// DefaultMetadata returns the metadata each variant ships with
func DefaultMetadata(v Variant) ServiceMetadata {
	description := "AI Service for Finance CRM"
	if v == VariantRoot {
		description = "AI-powered customer service capabilities for the Finance CRM"
	}

	return ServiceMetadata{
		Name:        DefaultServiceName,
		Description: description,
		Version:     DefaultServiceVersion,
	}
}
