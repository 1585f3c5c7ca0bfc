// Package config defines the format-agnostic model of a launch description:
// declared arguments, node definitions with their layered parameters and
// remappings, and the Loader interface a format-specific implementation (such
// as HCL) must satisfy.
//
// The model deliberately keeps parameter values and node display names as raw
// hcl.Expression fields rather than evaluated Go values. A description may
// reference its declared arguments (arg.serial) or the resource root
// (share_dir), and those are only known at build time, when the caller
// supplies overrides. The model captures intent; the launch builder resolves
// it.
package config
