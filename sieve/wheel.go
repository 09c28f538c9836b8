package sieve

// Wheel60 lists the 16 residues modulo 60 that are coprime to 60, in
// ascending order. Only these classes can hold primes above 5, so a
// segment stores one bit-vector per class.
var Wheel60 = [16]int64{1, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 49, 53, 59}
