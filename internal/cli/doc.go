// Package cli parses the camlaunch command line into an app.Config.
package cli
