package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LoadMode controls how errors are handled during catalog loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Extensions lists the catalog file extensions understood by the loader.
var Extensions = []string{".cue", ".hcl", ".yaml", ".yml"}

// Load reads a catalog file, or every catalog file under a directory, into c.
// In LoadModeFailFast the first error is returned alone; in
// LoadModeCollectAll every definition that loads is kept and all errors
// are returned.
func (c *Catalog) Load(path string, mode LoadMode) []error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog not found: %s", path)}}
	}
	if err != nil {
		return []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog: %v", err), Err: err}}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = FindFiles(path)
		if err != nil {
			return []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err), Err: err}}
		}
		if len(files) == 0 {
			return []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no catalog files found in %s", path)}}
		}
	}

	var errs []error
	for _, file := range files {
		defs, err := ReadFile(file)
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return errs
			}
			continue
		}
		for _, def := range defs {
			if err := c.Add(def); err != nil {
				errs = append(errs, err)
				if mode == LoadModeFailFast {
					return errs
				}
			}
		}
	}

	if c.Len() == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("no enumeration types found in %s", path)})
	}
	return errs
}

// ReadFile decodes the definitions of one catalog file without adding them.
// The decoder is chosen by file extension.
func ReadFile(path string) ([]*Definition, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Extensions, ext) {
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported catalog extension %q (want one of %s)", ext, strings.Join(Extensions, ", ")),
			File:    path,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := ErrCodeGeneric
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		return nil, &LoadError{Code: code, Message: fmt.Sprintf("reading catalog: %v", err), File: path, Err: err}
	}

	switch ext {
	case ".cue":
		return decodeCUE(data, path)
	case ".hcl":
		return decodeHCL(data, path)
	default:
		return decodeYAML(data, path)
	}
}

// FindFiles walks the directory and returns all catalog file paths, sorted.
func FindFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(Extensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	slices.Sort(files)
	return files, err
}
