// Package template parses HTML templates out of filesystems,
// merging application-provided files with the defaults embedded in this package.
package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"path"
)

// A Parser parses HTML templates with the functions provided.
type Parser struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a *Parser reading template files out of the provided filesystems.
//
// Filesystems earlier in the list shadow later ones;
// the defaults embedded in this package always come last.
func NewParser(fss []fs.FS) *Parser {
	return &Parser{
		fs:  newMergeFS(append(fss, pkgFS)...),
		fns: make(html.FuncMap),
	}
}

// AddFn includes the named function in the Parser's function map,
// returning the Parser so calls can chain.
//
// Helpers in this package - Nonce, RootUrl, Env, CurrentUser -
// return AddFn's arguments directly: p.AddFn(template.Nonce()).
func (p *Parser) AddFn(name string, fn any) *Parser {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}

	p.fns[name] = fn
	return p
}

// Parse parses the files found in the Parser's filesystems with the functions provided previously.
func (p *Parser) Parse(fps ...string) (*html.Template, error) {
	cleaned := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp == "" {
			continue
		}

		cleaned = append(cleaned, fp)
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(cleaned[0])).Funcs(p.fns).ParseFS(p.fs, cleaned...)
}
