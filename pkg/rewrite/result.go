// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

import (
	"fmt"

	"github.com/walteh/urlflip/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrRead classifies failures while loading a file's content
	ErrRead = errors.Base("read failure")
	// ErrWrite classifies failures while persisting updated content
	ErrWrite = errors.Base("write failure")
)

// FileError is a per-file read or write failure. It matches ErrRead or
// ErrWrite with errors.Is and unwraps to the underlying I/O error.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == e.Kind
}

// 📄 FileUpdateResult is the outcome of rewriting one target file
type FileUpdateResult struct {
	Path         string
	Existed      bool
	Changed      bool
	Replacements int
	DryRun       bool
	Err          error
}

// Status maps the result onto a tracked file status
func (r FileUpdateResult) Status() status.FileStatus {
	switch {
	case r.Err != nil:
		return status.StatusError
	case !r.Existed:
		return status.StatusMissing
	case r.Changed && r.DryRun:
		return status.StatusWouldUpdate
	case r.Changed:
		return status.StatusUpdated
	default:
		return status.StatusUnchanged
	}
}
