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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary/internal/testutil"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// runApp runs glossutil with the given arguments and standard input.
func runApp(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newGlossutilApp()
	app.Name = "glossutil"
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	code := run(app, append([]string{"glossutil"}, args...))
	return result{
		code:   code,
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
}

func writeGlossary(t *testing.T) string {
	t.Helper()

	return testutil.WriteCSV(t, "ja-en.csv", [][]string{
		{"term", "translation", "notes"},
		{"日本", "Japan", ""},
		{"日本語", "Japanese", "language"},
	})
}

func TestScan(t *testing.T) {
	t.Parallel()

	path := writeGlossary(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "highlight",
			stdin:    "日本語を学ぶ",
			args:     []string{"scan", "--highlight"},
			expected: "[日本語]を学ぶ\n",
		},
		{
			name:     "highlight translations",
			stdin:    "日本の日本語",
			args:     []string{"scan", "--highlight", "--translate", "-"},
			expected: "[日本](Japan)の[日本語](Japanese)\n",
		},
		{
			name:     "no matches",
			stdin:    "こんにちは",
			args:     []string{"scan", "--highlight"},
			expected: "こんにちは\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := runApp(t, test.stdin, append([]string{"-g", path}, test.args...)...)
			if want, got := ExitCodeSuccess, r.code; want != got {
				t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
			}
			if diff := cmp.Diff(test.expected, r.stdout); diff != "" {
				t.Fatalf("stdout (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScan_table(t *testing.T) {
	t.Parallel()

	r := runApp(t, "日本語を学ぶ。日本語は難しい。", "-g", writeGlossary(t), "scan", "--unique")
	if want, got := ExitCodeSuccess, r.code; want != got {
		t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
	}

	for _, s := range []string{"Offset", "0-3", "日本語", "Japanese"} {
		if !strings.Contains(r.stdout, s) {
			t.Errorf("stdout: missing %q:\n%s", s, r.stdout)
		}
	}
	if strings.Contains(r.stdout, "7-10") {
		t.Errorf("stdout: unexpected second match:\n%s", r.stdout)
	}
}

func TestScan_html(t *testing.T) {
	t.Parallel()

	r := runApp(t, "<p><b>日本語</b>を学ぶ</p>", "-g", writeGlossary(t), "scan", "--html", "--highlight")
	if want, got := ExitCodeSuccess, r.code; want != got {
		t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
	}
	if !strings.Contains(r.stdout, "[日本語]を学ぶ") {
		t.Fatalf("stdout: want highlighted text, got %q", r.stdout)
	}
	if strings.Contains(r.stdout, "<b>") {
		t.Fatalf("stdout: unexpected markup in %q", r.stdout)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	path := writeGlossary(t)

	tests := []struct {
		name     string
		args     []string
		code     int
		expected string
	}{
		{
			name:     "found",
			args:     []string{"lookup", "日本語"},
			code:     ExitCodeSuccess,
			expected: "日本語\nJapanese\nlanguage\n\n",
		},
		{
			name:     "prefix",
			args:     []string{"lookup", "--prefix", "日本"},
			code:     ExitCodeSuccess,
			expected: "日本\nJapan\n\n日本語\nJapanese\nlanguage\n\n",
		},
		{
			name: "not found",
			args: []string{"lookup", "中国"},
			code: ExitCodeNotFound,
		},
		{
			name: "missing argument",
			args: []string{"lookup"},
			code: ExitCodeFlagParseError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := runApp(t, "", append([]string{"-g", path}, test.args...)...)
			if want, got := test.code, r.code; want != got {
				t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
			}
			if diff := cmp.Diff(test.expected, r.stdout); diff != "" {
				t.Fatalf("stdout (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	path := writeGlossary(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{
			name: "missing glossary",
			args: []string{"-g", path + ".missing", "list"},
			code: ExitCodeLoadError,
		},
		{
			name: "invalid header mode",
			args: []string{"-g", path, "--header", "maybe", "list"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "invalid merge policy",
			args: []string{"-g", path, "--merge", "first", "list"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "unknown flag",
			args: []string{"--no-such-flag"},
			code: ExitCodeFlagParseError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := runApp(t, "", test.args...)
			if want, got := test.code, r.code; want != got {
				t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
			}
			if !strings.HasPrefix(r.stderr, "glossutil: ") {
				t.Fatalf("stderr: want error message, got %q", r.stderr)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	path := testutil.WriteCSV(t, "ja-en.csv", [][]string{
		{"日本", "Japan"},
		{"onlyone"},
	})

	r := runApp(t, "", "-g", path, "list")
	if want, got := ExitCodeSuccess, r.code; want != got {
		t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
	}
	if !strings.Contains(r.stderr, "warning") || !strings.Contains(r.stderr, ":2:") {
		t.Errorf("stderr: want warning for line 2, got %q", r.stderr)
	}
	if !strings.Contains(r.stdout, "Japan") {
		t.Errorf("stdout: want entry listed, got %q", r.stdout)
	}

	r = runApp(t, "", "-q", "-g", path, "list")
	if r.stderr != "" {
		t.Errorf("stderr: want no output with -q, got %q", r.stderr)
	}
}

func TestInteractive(t *testing.T) {
	t.Parallel()

	path := writeGlossary(t)
	r := runApp(t, "日本語を学ぶ\n\n:reload\n:quit\nignored\n", "-g", path, "interactive")
	if want, got := ExitCodeSuccess, r.code; want != got {
		t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
	}

	for _, s := range []string{"Japanese", "loaded 2 terms", "ja-en"} {
		if !strings.Contains(r.stdout, s) {
			t.Errorf("stdout: missing %q:\n%s", s, r.stdout)
		}
	}
}

// writeGlossaryDir writes an English and a Korean glossary to a temporary
// directory.
func writeGlossaryDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"en.csv": "日本,Japan\n猫,cat\n",
		"ko.csv": "日本,일본\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLang(t *testing.T) {
	t.Parallel()

	dir := writeGlossaryDir(t)

	tests := []struct {
		name     string
		args     []string
		code     int
		expected string
	}{
		{
			name:     "all glossaries",
			args:     []string{"scan", "--highlight", "-t"},
			code:     ExitCodeSuccess,
			expected: "[日本](Japan, 일본)の[猫](cat)\n",
		},
		{
			name:     "korean",
			args:     []string{"--lang", "ko", "scan", "--highlight", "-t"},
			code:     ExitCodeSuccess,
			expected: "[日本](일본)の猫\n",
		},
		{
			name: "unknown glossary",
			args: []string{"--lang", "zh", "scan"},
			code: ExitCodeLoadError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := runApp(t, "日本の猫", append([]string{"-g", dir}, test.args...)...)
			if want, got := test.code, r.code; want != got {
				t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
			}
			if diff := cmp.Diff(test.expected, r.stdout); diff != "" {
				t.Fatalf("stdout (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	dir := writeGlossaryDir(t)
	r := runApp(t, "", "-g", dir, "info")
	if want, got := ExitCodeSuccess, r.code; want != got {
		t.Fatalf("exit code; want: %d, got: %d: %s", want, got, r.stderr)
	}

	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	if want, got := 3, len(lines); want != got {
		t.Fatalf("lines; want: %d, got: %d:\n%s", want, got, r.stdout)
	}
	for i, want := range [][]string{
		{"Glossary", "Terms", "Files", "Loaded"},
		{"en", "2", filepath.Join(dir, "en.csv")},
		{"ko", "1", filepath.Join(dir, "ko.csv")},
	} {
		fields := strings.Fields(lines[i])
		if diff := cmp.Diff(want, fields[:len(want)]); diff != "" {
			t.Errorf("line %d (-want, +got):\n%s", i, diff)
		}
	}
}

func TestInteractive_reloadDirectory(t *testing.T) {
	t.Parallel()

	dir := writeGlossaryDir(t)

	// The new file is written before the reload command is read.
	stdin := &addFileReader{
		Reader: strings.NewReader(":reload\n:quit\n"),
		path:   filepath.Join(dir, "zh.csv"),
		data:   "日本,日本国\n",
		t:      t,
	}

	var stdout, stderr bytes.Buffer
	app := newGlossutilApp()
	app.Name = "glossutil"
	app.Reader = stdin
	app.Writer = &stdout
	app.ErrWriter = &stderr

	code := run(app, []string{"glossutil", "-g", dir, "interactive"})
	if want, got := ExitCodeSuccess, code; want != got {
		t.Fatalf("exit code; want: %d, got: %d: %s", want, got, stderr.String())
	}
	if !strings.Contains(stdout.String(), "zh.csv") {
		t.Fatalf("stdout: want zh glossary after reload:\n%s", stdout.String())
	}
}

// addFileReader writes a file before the first read.
type addFileReader struct {
	*strings.Reader
	path  string
	data  string
	t     *testing.T
	added bool
}

func (r *addFileReader) Read(p []byte) (int, error) {
	if !r.added {
		r.added = true
		if err := os.WriteFile(r.path, []byte(r.data), 0o600); err != nil {
			r.t.Error(err)
		}
	}
	return r.Reader.Read(p)
}
