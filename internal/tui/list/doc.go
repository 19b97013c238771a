// Package listview provides a virtual scrolling list for Bubble Tea programs.
//
// Only the rows inside the viewport are rendered, so lists with tens of
// thousands of items stay responsive. The visible range is computed by
// searchutil.VirtualScroll with a row height of one terminal line, and the
// selected row is kept visible with nearest-edge scrolling.
package listview
