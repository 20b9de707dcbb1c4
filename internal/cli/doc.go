// Package cli wires the welltie pipeline to a Cobra command tree.
package cli
