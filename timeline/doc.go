// Package timeline maps playback time onto a horizontal strip of blocks.
//
// Blocks of varying width are laid end to end with a fixed gap; block i is
// centred on the strip at the moment times[i]. A [Track] joins those
// (time, centre) pairs with a monotone spline so that the strip scrolls
// smoothly and never runs backwards between blocks.
//
// Building a Track for a long song is not free, so [Pool] runs builds on a
// fixed set of worker goroutines and caches finished tracks by input.
package timeline
