package utils

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CenteredHexNumber is the number of cells in a centered hexagon with n
// rings counting the center: 3n² − 3n + 1.
func CenteredHexNumber(n int) int {
	if n < 1 {
		return 0
	}
	return 3*n*n - 3*n + 1
}
