// Package feature summarizes tables of pulse-shape features: per-column
// means and spreads, grouping by ground-truth label, and Welch's t
// statistic for comparing two populations.
package feature
