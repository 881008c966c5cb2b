package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS over an ordered list of filesystems.
type mergeFS struct {
	// A cache minimizing ascertaining which filesystem holds the template.
	cache map[string]func(string) (fs.File, error)

	// The filesystems, checked in order.
	list []fs.FS

	sync.Mutex
}

func newMergeFS(fss ...fs.FS) *mergeFS {
	list := make([]fs.FS, 0, len(fss))
	for _, filesys := range fss {
		if filesys == nil {
			continue
		}

		list = append(list, filesys)
	}

	return &mergeFS{
		cache: make(map[string]func(string) (fs.File, error)),
		list:  list,
	}
}

// Open opens the file matching the name by checking the cache
// and then each filesystem in order.
//
// Whenever a file is found and is not present in the cache, it is added.
// Nothing removes references from the cache.
//
// If a file is removed from an OS-backed filesystem during runtime,
// then a reference to it from the cache returns the same error (fs.ErrNotExist)
// as if the cache did not have that reference.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	// NOTE: while a concurrent routine could add a reference
	// to the cache before this returns,
	// err on the side of performance and only block when needing to write.
	fn, ok := mfs.cache[name]
	if ok {
		return fn(name)
	}

	for _, filesys := range mfs.list {
		file, err := filesys.Open(name)
		if err == nil {
			mfs.Lock()
			mfs.cache[name] = filesys.Open
			mfs.Unlock()

			return file, nil
		}

		var pe *fs.PathError
		if errors.As(err, &pe) && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid)) {
			continue
		}

		return nil, fmt.Errorf("unable to open template: %w", err)
	}

	return nil, fmt.Errorf("could not open template %s: %w", name, fs.ErrNotExist)
}

//go:embed tmpl/*
var pkgFS embed.FS
