package ds

import (
	"fmt"
)

func NearestDivisibleByM(n int, m int) int {
	for i := n; i < n+m; i++ {
		if i%m == 0 {
			return i
		}
	}

	err := fmt.Errorf(
		`NearestDivisibleByM unreachable code with n = %d and m = %d`,
		n, m,
	)
	panic(err)
}

// PaddingToM returns how many bytes must follow a run of n bytes so that
// the run ends on a multiple of m. An exact multiple needs no padding.
func PaddingToM(n int, m int) int {
	return NearestDivisibleByM(n, m) - n
}
