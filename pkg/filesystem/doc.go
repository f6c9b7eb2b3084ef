// Package filesystem provides implementations of the types.FS
// interface: a direct OS-backed one used in production, and an
// afero-backed one for tests that do not depend on symlink fidelity.
package filesystem
