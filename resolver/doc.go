// SPDX-License-Identifier: MIT
// Package: apfabric/resolver
//
// Package resolver implements constraint resolution: when a partition's
// boundary traffic exceeds the fabric's per-tile channel capacity
// (MaxIn/MaxOut), it is split across duplicate tiles until every
// partition's boundary traffic fits. This runs after partition.Plan and
// before the switch allocator and tile materializer.
package resolver
