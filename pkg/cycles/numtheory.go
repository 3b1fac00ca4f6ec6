package cycles

import "math/big"

// rawPartitions computes every non-decreasing positive-integer sequence
// summing to n, with rawPartitions(0) = {()}, using the MemoCache's
// partition table to memoize the recursion across sub-values of n.
//
// Adapted from the stack-overflow recurrence the original implementation
// cites: partitions(n) = {(n)} union { sorted((x) + y) : 1<=x<n, y in partitions(n-x) }.
func rawPartitions(mc *MemoCache, n int) [][]int {
	if cached, ok := mc.getPartitions(n); ok {
		return cached
	}
	if n == 0 {
		result := [][]int{{}}
		mc.putPartitions(0, result)
		return result
	}

	seen := make(map[string][]int)
	add := func(p []int) {
		key := partitionSetKey(p)
		if _, dup := seen[key]; !dup {
			seen[key] = p
		}
	}
	add([]int{n})
	for x := 1; x < n; x++ {
		for _, y := range rawPartitions(mc, n-x) {
			merged := make([]int, 0, len(y)+1)
			merged = append(merged, x)
			merged = append(merged, y...)
			sortInts(merged)
			add(merged)
		}
	}

	result := make([][]int, 0, len(seen))
	for _, p := range seen {
		result = append(result, p)
	}
	sortPartitionList(result)
	mc.putPartitions(n, result)
	return result
}

// partitionSetKey produces a stable map key for an already-sorted integer
// sequence.
func partitionSetKey(p []int) string {
	buf := make([]byte, 0, len(p)*4)
	for _, v := range p {
		buf = appendInt(buf, v)
		buf = append(buf, ',')
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// sortPartitionList orders partitions deterministically (lexicographically)
// so that rawPartitions(n) is reproducible across runs, per spec.md §9's
// "deterministic iteration" guidance.
func sortPartitionList(ps [][]int) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && lessPartition(ps[j], ps[j-1]); j-- {
			ps[j-1], ps[j] = ps[j], ps[j-1]
		}
	}
}

func lessPartition(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// pAdicValuation returns the largest e such that p^e | n, and 0 for n == 0.
func pAdicValuation(n, p int) int {
	if n == 0 {
		return 0
	}
	e := 0
	for n%p == 0 {
		n /= p
		e++
	}
	return e
}

// signature returns (sum(partition) - len(partition)) mod 2: the parity of
// the permutation the partition's cycle lengths represent.
func signature(partition []int) int {
	sum := 0
	for _, v := range partition {
		sum += v
	}
	return ((sum - len(partition)) % 2 + 2) % 2
}

// lcmInts returns the LCM of a sequence of positive integers as a big.Int,
// since realized orders on large puzzles exceed 64 bits (spec.md §9).
func lcmInts(values []int) *big.Int {
	result := big.NewInt(1)
	for _, v := range values {
		result = bigLCM(result, big.NewInt(int64(v)))
	}
	return result
}

// bigLCM returns the LCM of two big.Int values.
func bigLCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := new(big.Int).GCD(nil, nil, a, b)
	result := new(big.Int).Div(a, g)
	return result.Mul(result, b)
}
