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
Package rewrite applies ordered literal replacement rules to a fixed list of files.

	+-------------+
	|   Rewrite   |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|  Transform  |
	| (pkg/text)  |
	+------+------+

🎯 Purpose:
- Walks the target file list in order, one file at a time
- Applies every rule that applies to the file, in rule order
- Writes back only files whose content changed

🔄 Flow:
1. Existence check (missing files are reported, not failed)
2. Read the whole file
3. Transform in memory (rules cascade: each rule sees the previous output)
4. Write the whole file back if it changed, through status.FileManager
5. Record a FileUpdateResult and print one status line

⚡ Guarantees:
- A read or write failure is isolated to its file, later files still run
- Unchanged files are never rewritten, so their mtime does not move
- Running the same rules twice changes nothing on the second run
- Cancellation is checked between files; written files stay written

🔍 Example:

	rw, err := rewrite.New(rewrite.Options{
		Files:    mgr,
		Reporter: mgr,
		Console:  console,
	})
	results, err := rw.Rewrite(ctx, []string{"src/main/resources/application.properties"}, rules)
*/
package rewrite
