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

/*
Package status manages file access and status tracking for urlflip.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |Tracking |
	| (Storage) |           |(Results)|
	+-----------+           +---------+

🎯 Purpose:
- Reads and writes target files relative to a base directory
- Tracks the outcome of every target file (updated, unchanged, missing, error)
- Reports progress through zerolog

⚡ Key Responsibilities:
- Existence checks that separate "missing" from "unreadable"
- Whole-file atomic writes that keep the original file mode
- Ordered result tracking for the closing summary

🤝 Interfaces:
- FileManager: file system access
- StatusReporter: status tracking and progress
- FileFormatter: progress and error messages

🔍 Example:

	mgr := status.New(baseDir, logger)

	ok, err := mgr.FileExists(ctx, "src/main/resources/application.properties")
	content, err := mgr.ReadFile(ctx, "src/main/resources/application.properties")
	err = mgr.WriteFileAtomic(ctx, "src/main/resources/application.properties", updated)

	mgr.TrackFile(ctx, path, status.FileInfo{Status: status.StatusUpdated})
	counts := mgr.Counts()
*/
package status
