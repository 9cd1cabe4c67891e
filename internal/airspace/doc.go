// Package airspace detects proximity conflicts between aircraft positions
// in a bounded square airspace.
//
// Responsibilities: point generation/ingestion, sector (uniform grid)
// indexing, and conflict-pair detection with a brute-force reference.
// Key types: Point, SectorIndex, ConflictPair, Detection.
//
// Detection works on a static snapshot of 2D positions. The sector index
// is rebuilt per run; no incremental updates.
package airspace
