// SPDX-License-Identifier: MPL-2.0

// bitforge is a package/environment manager for FPGA toolchains: it tracks
// installed toolchain packages, verifies their versions against the
// distribution requirements, and computes the process environment needed
// to invoke them.
package main

func main() {
	Execute()
}
