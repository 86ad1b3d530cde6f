// SPDX-License-Identifier: EPL-2.0

// Package plot turns sample buffers and spectra into plot-ready series.
//
// Nothing here draws. A Series carries a title, axis labels and the points;
// rendering is left to whatever consumes it, for example the CSV written by
// WriteCSV.
package plot
