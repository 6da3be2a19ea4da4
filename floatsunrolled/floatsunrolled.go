// floatsunrolled is inspired by the SIMD blog post
// https://github.com/camdencheek/simd_blog/blob/main/main.go
//
// Each kernel walks its inputs in batches of UnrollBatch and finishes any
// remainder with a scalar tail, so slices of any length are accepted.
package floatsunrolled

import (
	"errors"
)

const UnrollBatch = 4

var (
	ErrSliceLengthMismatch       = errors.New("slices must have equal lengths")
	ErrOutputSliceLengthMismatch = errors.New("output slice length not the same as input")
)

// batched returns the length of the prefix of s that is a multiple of UnrollBatch
func batched(n int) int {
	return n - n%UnrollBatch
}

// Sum returns the sum of all elements in s
func Sum(s []float64) float64 {
	n := batched(len(s))

	var sum float64
	for i := 0; i < n; i += UnrollBatch {
		sTmp := s[i : i+UnrollBatch : i+UnrollBatch]
		sum += sTmp[0] + sTmp[1] + sTmp[2] + sTmp[3]
	}
	for i := n; i < len(s); i++ {
		sum += s[i]
	}
	return sum
}

// Dot returns the inner product of a and b
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(ErrSliceLengthMismatch)
	}

	n := batched(len(a))

	var sum float64
	for i := 0; i < n; i += UnrollBatch {
		aTmp := a[i : i+UnrollBatch : i+UnrollBatch]
		bTmp := b[i : i+UnrollBatch : i+UnrollBatch]
		s0 := aTmp[0] * bTmp[0]
		s1 := aTmp[1] * bTmp[1]
		s2 := aTmp[2] * bTmp[2]
		s3 := aTmp[3] * bTmp[3]
		sum += s0 + s1 + s2 + s3
	}
	for i := n; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Add adds s into dst element-wise and returns dst
func Add(dst, s []float64) []float64 {
	if len(dst) != len(s) {
		panic(ErrSliceLengthMismatch)
	}

	n := batched(len(s))
	for i := 0; i < n; i += UnrollBatch {
		dstTmp := dst[i : i+UnrollBatch : i+UnrollBatch]
		sTmp := s[i : i+UnrollBatch : i+UnrollBatch]
		dstTmp[0] += sTmp[0]
		dstTmp[1] += sTmp[1]
		dstTmp[2] += sTmp[2]
		dstTmp[3] += sTmp[3]
	}
	for i := n; i < len(s); i++ {
		dst[i] += s[i]
	}
	return dst
}

// ScaleTo sets dst to c*s. A nil dst is allocated.
func ScaleTo(dst []float64, c float64, s []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(s))
	} else if len(dst) != len(s) {
		panic(ErrOutputSliceLengthMismatch)
	}

	n := batched(len(s))
	for i := 0; i < n; i += UnrollBatch {
		dstTmp := dst[i : i+UnrollBatch : i+UnrollBatch]
		sTmp := s[i : i+UnrollBatch : i+UnrollBatch]
		dstTmp[0] = c * sTmp[0]
		dstTmp[1] = c * sTmp[1]
		dstTmp[2] = c * sTmp[2]
		dstTmp[3] = c * sTmp[3]
	}
	for i := n; i < len(s); i++ {
		dst[i] = c * s[i]
	}

	return dst
}
