// Package layout persists grid occupancy in the plain-text wire format
// and reloads it with all-or-nothing validation.
//
// What:
//
//   - The format: exactly height lines, each with exactly width
//     whitespace-separated integers, each 0 (free) or 1 (blocked),
//     row-major, no header or trailing metadata.
//   - Encode/Decode work on io.Writer/io.Reader; Save/Load wrap file I/O
//     and commit through grid.LoadSnapshot.
//   - Decode stages the full matrix and validates every token and both
//     dimensions before returning — a short, malformed or wrong-dimension
//     input is rejected as a whole, never applied partially.
//   - Watcher reports debounced change notifications for layout files so
//     an embedding loop can reload on its own tick; the core itself stays
//     single-threaded.
//
// Errors:
//
//   - ErrBadToken:          a token that is not the integer 0 or 1.
//   - ErrDimensionMismatch: line or token counts that do not match the
//     requested width×height.
//   - ErrNilGrid:           nil grid passed to Save or Load.
//   - ErrNoTargets:         Watch called without any file to watch.
//
// I/O failures are wrapped with file context; on any failure the target
// grid keeps its previous contents.
package layout
