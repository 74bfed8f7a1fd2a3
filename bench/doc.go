// Package bench drives the brute-force vs divide-and-conquer comparison.
//
// Run doubles the input size from StartSize while it stays below MaxSize. For
// every size it performs Repeats runs; each run
//
//  1. generates a fresh distinct point set (pointgen, one seeded RNG per Run),
//  2. optionally round-trips it through a scratch file (pointio),
//  3. sorts it (quicksort),
//  4. solves it with divconq.Solve and with bruteforce.Solve,
//  5. checks that both distances agree and hands each result to its Sink.
//
// After the last run of a size, each Sink receives the mean elapsed time and
// the mean iteration count over the runs.
//
// Sinks:
//
//   - TextSink writes "size t1 i1 t2 i2 … avgT avgI" lines (times in ns).
//   - Collector keeps every row in memory.
//
// Errors:
//
//   - ErrDisagreement: the two solvers reported different distances.
//   - Errors from generation, scratch I/O and sinks are returned unchanged.
package bench
