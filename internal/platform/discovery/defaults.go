// Package discovery centralizes service address conventions.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceDiceTray is the dice tray gRPC service identity.
	ServiceDiceTray = "dicetray"
	// ServiceJaeger is the jaeger HTTP service identity.
	ServiceJaeger = "jaeger"

	loopbackHost = "localhost"
)

var grpcPorts = map[string]int{
	ServiceDiceTray: 8095,
}

var httpPorts = map[string]int{
	ServiceJaeger: 16686,
}

// GRPCPort returns the conventional gRPC port for a service, or 0.
func GRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	service = strings.TrimSpace(service)
	return hostAddr(service, service, grpcPorts)
}

// LoopbackGRPCAddr returns the service's gRPC address on localhost.
func LoopbackGRPCAddr(service string) string {
	return hostAddr(loopbackHost, strings.TrimSpace(service), grpcPorts)
}

// DefaultHTTPAddr returns the canonical in-network HTTP address for a service.
func DefaultHTTPAddr(service string) string {
	service = strings.TrimSpace(service)
	return hostAddr(service, service, httpPorts)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

// OrLoopbackGRPCAddr returns value when set, otherwise the service's
// localhost address.
func OrLoopbackGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return LoopbackGRPCAddr(service)
}

func hostAddr(host, service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok || port <= 0 {
		return ""
	}
	return host + ":" + strconv.Itoa(port)
}
