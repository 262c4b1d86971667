// Package app wires configuration into the envseal dependency graph.
package app
