// SPDX-License-Identifier: MIT
// Package: apfabric/partition
//
// errors.go - sentinel errors for the partition package.
package partition

import "errors"

// ErrNoValidPartition indicates Plan exhausted every (npart, tailsize)
// candidate without finding one that respects the tile size constraint.
var ErrNoValidPartition = errors.New("partition: no valid partition found")
