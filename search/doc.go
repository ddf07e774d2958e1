// Copyright 2025 Poiesic Systems
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

// Package search provides verbatim text search over compiled recordings.
//
// The Searcher type scans three sources with all-words keyword matching and
// stop-word filtering:
//   - Transcript segments, attributed to their speaker
//   - Memory titles, summaries, and moments
//   - Entity names, attributed to the recordings that mention them
//
// Hits are typed by source, scored with a boost for exact substring matches,
// and ranked by score.
package search
