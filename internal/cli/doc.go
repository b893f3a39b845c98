// Package cli turns the stnsched command line into an app.Config. Usage
// errors are reported as *ExitError carrying exit code 2.
package cli
