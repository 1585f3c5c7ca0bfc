// Package hcl provides the concrete HCL implementation of the launch
// description loader defined in the `config` package. It is responsible for
// file discovery, parsing, structural validation, and translation of the raw
// syntax into the format-agnostic model.
package hcl
