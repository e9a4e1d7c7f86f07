// Package fontfind locates a font file on disk by a fuzzy file-name match
// and resolves the family name stored inside it.
//
// Directories are searched in priority order. File names and the target
// are compared case-insensitively with spaces, dashes and underscores
// removed, so "Ioskeley Mono" matches IoskeleyMono-Regular.ttf. Regular
// faces win over bold, italic and oblique ones.
package fontfind
