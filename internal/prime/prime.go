// Package prime implements a trial-division primality check.
//
// The check divides by every integer between 2 and n-1. That is O(n);
// callers check single, small numbers.
package prime

// IsPrime reports whether n is prime. Values below 2 are not.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	for i := int64(2); i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
