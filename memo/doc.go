// Package memo provides a fully concurrent, keyed cache of computation
// results with at-most-one computation per key.
//
// The cache behaves like a map's compute-if-absent, except that computing
// the value for one key never blocks lookups or computations for other
// keys: the table lock is held only for the entry insertion, and the
// computation itself runs outside of it in the claiming caller's
// goroutine. Every other caller for the same key waits on the entry's
// completion and receives the identical result — including an identical
// error if the computation failed. Negative results are cached exactly
// like positive ones and re-returned on every future Get.
//
// Key equality is Go map equality on the comparable key type K: keys
// equal under == share one computation and one cached result.
//
// Typical client: the per-k segment-recombination catalogs of the k-opt
// solver, whose construction cost grows super-exponentially in k and is
// amortized across all solver instances of a process.
package memo
