// SPDX-License-Identifier: MIT

package renumber

// White-box bridge for renumber_test. The _test.go suffix keeps this file
// out of production builds while it still compiles as package renumber.

// SetCapacity_TestOnly lowers ix's intern capacity so the overflow branch
// is reachable without filling the 32-bit id space.
func SetCapacity_TestOnly(ix *Index, n int) {
	ix.capacity = uint64(n)
}
