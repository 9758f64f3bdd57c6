// Package integration provides integration tests for the textkit library.
//
// Package: integration
// Title: textkit Integration Tests
// Description: This package contains integration tests that verify the correct
//              interaction between the textkit packages, ensuring consistent
//              behavior, error handling, and performance characteristics
//              across package boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation of integration test suite
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Cross-package error handling consistency
// - Data flow between packages (textx → seqx word-frequency pipeline)
// - Profile-driven behavior against the built-in defaults
//
// Performance Integration Tests (performance_test.go):
// - Cross-package pipeline benchmarks
// - Scalability with varying input sizes
//
// Running Integration Tests:
//
// To run all integration tests:
//   go test -v ./test/integration/
//
// To run performance benchmarks:
//   go test -v ./test/integration/ -bench=.
package integration
