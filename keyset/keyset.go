// Package keyset tracks which positions of an alphabet have been seen.
package keyset

import "fmt"

// Set is a fixed-size bit set indexed by alphabet position.
type Set struct {
	Size int
	data []byte
}

func New(size int) Set {
	lenBytes := (size + 7) / 8
	return Set{Size: size, data: make([]byte, lenBytes)}
}

func (set *Set) Has(index int) (bool, error) {
	if index < 0 || index >= set.Size {
		return false, fmt.Errorf("Has: index out of bounds, index=%d, size=%d", index, set.Size)
	}

	mask := byte(1 << (7 - index%8))
	return set.data[index/8]&mask != 0, nil
}

// Add marks index as seen. It reports whether the index was newly added.
func (set *Set) Add(index int) (bool, error) {
	if index < 0 || index >= set.Size {
		return false, fmt.Errorf("Add: index out of bounds, index=%d, size=%d", index, set.Size)
	}

	seen, err := set.Has(index)
	if err != nil || seen {
		return false, err
	}
	set.data[index/8] |= byte(1 << (7 - index%8))
	return true, nil
}
