// Package app wires services together for the CLI.
package app
