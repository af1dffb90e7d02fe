package discovery

import "fmt"

type Page[T any] struct {
	Items       []T
	Number      int
	Size        int
	HasNext     bool
	HasPrevious bool
}

// Paginate returns the 1-based page of items. Pages outside the result give
// an empty window. A size below one is a caller bug.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size < 1 {
		panic(fmt.Sprintf("discovery: page size must be positive, got %d", size))
	}
	pages := PageCount(len(items), size)
	ret := Page[T]{
		Items:       []T{},
		Number:      number,
		Size:        size,
		HasNext:     number < pages,
		HasPrevious: number > 1,
	}
	if number < 1 || number > pages {
		return ret
	}
	start := (number - 1) * size
	end := min(start+size, len(items))
	ret.Items = items[start:end:end]
	return ret
}

// PageCount is the number of non-empty pages.
func PageCount(total, size int) int {
	if size < 1 || total <= 0 {
		return 0
	}
	return (total-1)/size + 1
}
