// SPDX-License-Identifier: MIT

// Package ops selects matrix algorithms by name.
//
// Every function resolves a case-insensitive method name ("lup",
// "Gram-Schmidt", "gauss_jordan" ...) to the matching routine of package
// matrix and forwards the call unchanged. Unknown names fail with
// matrix.ErrUnknownMethod. The facade adds no numerics of its own; it exists
// for callers that read the strategy from configuration or user input.
package ops
