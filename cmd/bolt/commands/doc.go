// Package commands implements the bolt CLI commands.
package commands
