// SPDX-License-Identifier: MIT

// Package edgelist reads and writes directed link streams in a plain-text
// edge-list format:
//
//	# comment
//	0 1
//	1	2
//
// Every non-blank line that does not start with '#' holds exactly two
// unsigned decimal identifiers separated by spaces or tabs. Files whose name
// ends in ".gz" are gunzipped transparently by Open.
//
// Errors:
//
//   - ErrMalformedLine   a line does not hold exactly two unsigned integers
//     (the wrapped error carries the 1-based line number).
package edgelist
