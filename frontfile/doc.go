// SPDX-License-Identifier: MIT

// Package frontfile reads and writes sequences of fronts in the plain-text
// format used by hypervolume tools.
//
// Format:
//
//	# any text          ← starts a new front
//	0.598 0.737 0.313   ← one point per line
//	0.218 0.911 0.482
//	#
//	...
//
// Values are separated by whitespace unless WithDelimiter is given. Blank
// lines are ignored, a file without any '#' line holds a single front, and
// fronts with no points (e.g. after a trailing '#') are dropped.
//
// Files ending in .gz, .zst or .lz4 are compressed and decompressed
// transparently by Open and Create.
package frontfile
