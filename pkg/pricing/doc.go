// Package pricing formats amounts into localized price strings and derives the
// values renderers need from those strings: the numeric/suffix split, the rune
// length used for font-size buckets, and the discount caption.
package pricing
