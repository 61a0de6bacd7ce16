// Package chart renders cluster profile charts for inspection of clustering
// results. Each cluster is drawn as a line chart with one series per member
// row and one X position per dataset column, which makes tight clusters
// visually obvious as bundles of near-parallel lines.
package chart
