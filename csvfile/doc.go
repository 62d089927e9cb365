// Copyright 2025 Ian Lewis
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

// Package csvfile implements reading glossary CSV files.
//
// A glossary file holds one term per row:
//
//	sourceTerm,translation1[,translation2,...]
//
// Files are UTF-8 encoded and may start with a byte order mark. Files ending
// in .gz are gzip compressed and files ending in .dz are dictzip compressed.
//
// The [Scanner] reads a file row by row. Rows that are not valid CSV are
// returned as records carrying the parse error so callers can skip them and
// continue with the rest of the file.
package csvfile
