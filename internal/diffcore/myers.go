/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See License.txt in the project root for license information.
 *--------------------------------------------------------------------------------------------*/
// Ported from the TypeScript Myers diff implementation in VS Code:
// https://github.com/microsoft/vscode/blob/main/src/vs/editor/common/diff/defaultLinesDiffComputer/algorithms/myersDiffAlgorithm.ts

package diffcore

import "slices"

// MyersDiff computes the shortest edit script between seq1 and seq2.
func MyersDiff[E comparable](seq1, seq2 []E) []Change {
	if len(seq1) == 0 && len(seq2) == 0 {
		return []Change{}
	}
	if len(seq1) == 0 {
		return []Change{{Ins: len(seq2)}}
	}
	if len(seq2) == 0 {
		return []Change{{Del: len(seq1)}}
	}

	seqX, seqY := seq1, seq2
	getXAfterSnake := func(x, y int) int {
		for x < len(seqX) && y < len(seqY) && seqX[x] == seqY[y] {
			x++
			y++
		}
		return x
	}

	d := 0
	v := newFastIntArray()
	v.set(0, getXAfterSnake(0, 0))
	paths := &snakePaths{positive: make(map[int]*snakePath), negative: make(map[int]*snakePath)}
	if v.get(0) == 0 {
		paths.set(0, nil)
	} else {
		paths.set(0, &snakePath{x: 0, y: 0, length: v.get(0)})
	}

	k := 0
outer:
	for {
		d++
		lowerBound := -min(d, len(seqY)+(d%2))
		upperBound := min(d, len(seqX)+(d%2))
		for k = lowerBound; k <= upperBound; k += 2 {
			maxXofDLineTop, maxXofDLineLeft := -1, -1
			if k != upperBound {
				maxXofDLineTop = v.get(k + 1)
			}
			if k != lowerBound {
				maxXofDLineLeft = v.get(k-1) + 1
			}
			x := min(max(maxXofDLineTop, maxXofDLineLeft), len(seqX))
			y := x - k
			if x > len(seqX) || y > len(seqY) {
				continue
			}
			newMaxX := getXAfterSnake(x, y)
			v.set(k, newMaxX)
			var lastPath *snakePath
			if x == maxXofDLineTop {
				lastPath = paths.get(k + 1)
			} else {
				lastPath = paths.get(k - 1)
			}
			if newMaxX != x {
				paths.set(k, &snakePath{pre: lastPath, x: x, y: y, length: newMaxX - x})
			} else {
				paths.set(k, lastPath)
			}
			if v.get(k) == len(seqX) && v.get(k)-k == len(seqY) {
				break outer
			}
		}
	}

	path := paths.get(k)
	lastX, lastY := len(seqX), len(seqY)
	changes := make([]Change, 0, 10)
	for {
		var endX, endY int
		if path != nil {
			endX = path.x + path.length
			endY = path.y + path.length
		}
		if endX != lastX || endY != lastY {
			changes = append(changes, Change{P1: endX, P2: endY, Del: lastX - endX, Ins: lastY - endY})
		}
		if path == nil {
			break
		}
		lastX, lastY = path.x, path.y
		path = path.pre
	}
	slices.Reverse(changes)
	return changes
}

type snakePath struct {
	pre          *snakePath
	x, y, length int
}

// fastIntArray supports O(1) get/set at positive and negative indices,
// growing its backing slices geometrically.
type fastIntArray struct {
	positive, negative []int
}

func newFastIntArray() *fastIntArray {
	return &fastIntArray{positive: make([]int, 10), negative: make([]int, 10)}
}

func (t *fastIntArray) get(i int) int {
	if i < 0 {
		return t.negative[-i-1]
	}
	return t.positive[i]
}

func (t *fastIntArray) set(i, v int) {
	if i < 0 {
		i = -i - 1
		for i >= len(t.negative) {
			t.negative = append(t.negative, make([]int, len(t.negative))...)
		}
		t.negative[i] = v
		return
	}
	for i >= len(t.positive) {
		t.positive = append(t.positive, make([]int, len(t.positive))...)
	}
	t.positive[i] = v
}

type snakePaths struct {
	positive, negative map[int]*snakePath
}

func (t *snakePaths) get(i int) *snakePath {
	if i < 0 {
		return t.negative[-i-1]
	}
	return t.positive[i]
}

func (t *snakePaths) set(i int, v *snakePath) {
	if i < 0 {
		t.negative[-i-1] = v
		return
	}
	t.positive[i] = v
}
