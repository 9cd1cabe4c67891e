// Package monitor renders debugging views of a detection run: an HTML
// conflict scatter (go-echarts) and a PNG sector-occupancy histogram
// (gonum/plot). Both write to files or writers; nothing here is needed for
// detection itself.
package monitor
