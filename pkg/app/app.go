// Package app defines the runtime contract shared by the cmd/* binaries.
//
// A binary loads its configuration and hands it to a Runner, so it does not
// depend on how the application components are wired.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
