package sieve

// Eratosthenes returns the primes below n in ascending order. The
// classic sieve is only used as a seed: it supplies the cross-out
// primes for the Atkin segments and the candidate primes for the
// quadratic-sieve factor base.
func Eratosthenes(n int64) []int64 {
	if n <= 2 {
		return nil
	}
	isPrime := make([]bool, n)
	for i := int64(2); i < n; i++ {
		isPrime[i] = true
	}
	for i := int64(2); i*i < n; i++ {
		if isPrime[i] {
			for j := i * i; j < n; j += i {
				isPrime[j] = false
			}
		}
	}
	res := make([]int64, 0, n/2)
	for i := int64(2); i < n; i++ {
		if isPrime[i] {
			res = append(res, i)
		}
	}
	return res
}
