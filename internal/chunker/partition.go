package chunker

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/repolens/repolens/internal/catalog"
)

// ErrTargetSize is returned when Partition is called with a non-positive
// target size. A zero or negative budget would degrade into either
// unbounded chunk growth or one chunk per file, so it is rejected outright.
var ErrTargetSize = errors.New("target size must be positive")

// RootGroup is the directory-group key for files with no directory component.
const RootGroup = "__root__"

// DirectoryGroup returns the top-level path segment used to cluster regular
// files during packing, or RootGroup for root-level files.
func DirectoryGroup(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return RootGroup
}

// Partition groups files into chunks bounded by targetSize bytes.
//
// Priority files (per IsPriority) are packed first in their input order and
// their chunks precede all regular chunks. Regular files are clustered by
// top-level directory, groups processed in ascending key order and files
// sorted by path within each group. A single running chunk persists across
// group boundaries: a new group never forces a seal on its own, which keeps
// small directories from fragmenting into tiny chunks while contiguous
// enumeration still lands most of a directory in the same chunk.
//
// A chunk seals only when appending the next file would exceed targetSize
// and the chunk already holds at least one file. A file larger than
// targetSize is emitted alone in its own chunk; that is the only case where
// a chunk may exceed the budget.
//
// Every input file lands in exactly one chunk and the result is fully
// deterministic for a given input list and target size.
func Partition(files []catalog.SourceFile, targetSize int) ([]*Chunk, error) {
	if targetSize <= 0 {
		return nil, fmt.Errorf("%w; got %d", ErrTargetSize, targetSize)
	}
	if len(files) == 0 {
		return nil, nil
	}

	var priority, regular []catalog.SourceFile
	for _, f := range files {
		if _, ok := IsPriority(f.Path); ok {
			priority = append(priority, f)
		} else {
			regular = append(regular, f)
		}
	}

	p := packer{target: targetSize}

	// Priority files keep their catalog order and seal before any regular
	// file is considered.
	for _, f := range priority {
		p.add(f)
	}
	p.flush()

	groups := make(map[string][]catalog.SourceFile)
	for _, f := range regular {
		key := DirectoryGroup(f.Path)
		groups[key] = append(groups[key], f)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		group := groups[key]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Path < group[j].Path
		})

		// The running chunk deliberately survives the group boundary.
		for _, f := range group {
			p.add(f)
		}
	}
	p.flush()

	return p.chunks, nil
}

// packer is the size-bounded greedy accumulator behind Partition.
type packer struct {
	target  int
	chunks  []*Chunk
	current *Chunk
}

// add places one file, sealing the running chunk when the budget requires it.
func (p *packer) add(f catalog.SourceFile) {
	size := len(f.Content)

	// A file that alone exceeds the budget gets a chunk to itself.
	if size > p.target {
		p.flush()
		single := &Chunk{}
		single.Add(f)
		p.chunks = append(p.chunks, single)
		return
	}

	if p.current == nil {
		p.current = &Chunk{}
	}
	if p.current.totalSize+size > p.target && p.current.Len() > 0 {
		p.flush()
		p.current = &Chunk{}
	}

	p.current.Add(f)
}

// flush seals the running chunk into the result if it holds any files.
func (p *packer) flush() {
	if p.current != nil && p.current.Len() > 0 {
		p.chunks = append(p.chunks, p.current)
	}
	p.current = nil
}
