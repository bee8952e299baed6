// Package store persists a jar to a single JSON document on disk.
//
// The whole tree is rewritten after every mutation and read back at
// startup. A missing or malformed document falls back silently to the
// built-in default jar; persistence failures never corrupt the previous
// document because writes go through a temp file and an atomic rename.
package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/codec"
	"github.com/jarstore/go-jar/debug"
	"github.com/jarstore/go-jar/ir"
)

// DefaultPath is used when no path is configured and $JAR_STATE is unset.
const DefaultPath = "jar.state.json"

// Store owns a jar and its on-disk document. The jar itself is
// single-threaded; Store serializes access for hosts with concurrent entry
// points (the HTTP trigger server).
type Store struct {
	path string

	mu  sync.Mutex
	jar *jar.Jar
}

// Open loads the document at path, falling back to the default jar when the
// file is absent or does not decode.
func Open(path string) *Store {
	if path == "" {
		path = os.Getenv("JAR_STATE")
	}
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path}
	s.jar = jar.New(load(path)...)
	return s
}

func load(path string) []*ir.Node {
	d, err := os.ReadFile(path)
	if err != nil {
		if debug.Store() {
			debug.Logf("store: %v, using default jar\n", err)
		}
		return DefaultJar()
	}
	nodes, err := codec.Unmarshal(d)
	if err != nil {
		// malformed persisted document: non-fatal, default tree
		if debug.Store() {
			debug.Logf("store: decode %s: %v, using default jar\n", path, err)
		}
		return DefaultJar()
	}
	return nodes
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// View runs f with the jar under the store lock, without persisting.
func (s *Store) View(f func(j *jar.Jar) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.jar)
}

// Update runs f with the jar under the store lock and rewrites the document
// when f succeeds. f sees the current tree and must leave it consistent;
// a failed f leaves both the tree and the document as they were.
func (s *Store) Update(f func(j *jar.Jar) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := f(s.jar); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) save() error {
	d, err := codec.MarshalIndent(s.jar.Nodes)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, d, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
