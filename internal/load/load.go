// Package load reads class reference dumps from disk or stdin and hands the
// raw records to the model builder. It is the only place JSON shapes are
// inspected.
package load

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/gddocs/internal/errors"
	"git.home.luguber.info/inful/gddocs/internal/gdscript"
)

// Dump is one parsed reference dump: the optional project header and the raw
// class records, still untyped.
type Dump struct {
	Project gdscript.ProjectInfo
	Records []gdscript.Raw
}

// Read parses a reference dump. Two shapes are accepted: a bare JSON array
// of class records, and an object carrying a project header plus a "classes"
// array. The collector has emitted both across versions.
func Read(r io.Reader) (Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dump{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read input")
	}

	var asList []gdscript.Raw
	if err := json.Unmarshal(data, &asList); err == nil {
		return Dump{Records: asList}, nil
	}

	var asObject struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Version     string         `json:"version"`
		Classes     []gdscript.Raw `json:"classes"`
	}
	if err := json.Unmarshal(data, &asObject); err != nil {
		return Dump{}, errors.WrapError(err, errors.CategoryValidation, "input is neither a record list nor a reference dump object")
	}
	return Dump{
		Project: gdscript.ProjectInfo{
			Name:        asObject.Name,
			Description: asObject.Description,
			Version:     asObject.Version,
		},
		Records: asObject.Classes,
	}, nil
}

// ReadFile parses the dump at path; "-" selects stdin.
func ReadFile(path string) (Dump, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Dump{}, errors.WrapError(err, errors.CategoryFileSystem, fmt.Sprintf("failed to open %s", path))
	}
	defer f.Close()
	return Read(f)
}

// ReadFiles parses every dump and concatenates the records in argument
// order. The first non-empty project header wins.
func ReadFiles(paths []string) (Dump, error) {
	var merged Dump
	for _, path := range paths {
		dump, err := ReadFile(path)
		if err != nil {
			return Dump{}, err
		}
		if merged.Project == (gdscript.ProjectInfo{}) {
			merged.Project = dump.Project
		}
		merged.Records = append(merged.Records, dump.Records...)
	}
	return merged, nil
}
