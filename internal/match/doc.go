// Package match scores how likely two corpus records describe the same
// physical pinball table. Five attributes contribute to a weighted total:
// title similarity, release year, manufacturer, player count, and author
// credit. An attribute absent on either side contributes zero rather than
// penalizing the pair.
package match
