package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
	tu "github.com/desertthunder/playq/internal/testing"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		DB:     tu.NewTestDB(t),
		Output: output,
		Logger: shared.NewLogger(io.Discard),
	})
	return runner, output
}

// run executes the CLI with args against runner, pointing --config at a file that does not exist
func run(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	argv := append([]string{"playq", "--config", filepath.Join(t.TempDir(), "missing.toml")}, args...)
	return newApp(runner).Run(t.Context(), argv)
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			db := tu.NewTestDB(t)

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Logger:     logger,
				Output:     output,
				DB:         db,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.db != db {
				t.Error("expected db to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("manager", func(t *testing.T) {
		t.Run("opens and migrates the configured database", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Database.Driver = shared.DriverPureGo
			config.Database.Path = filepath.Join(t.TempDir(), "playq.db")
			runner := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(io.Discard)})

			tm, err := runner.manager(t.Context())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if again, _ := runner.manager(t.Context()); again != tm {
				t.Error("expected manager to be reused")
			}

			version, err := shared.CurrentVersion(t.Context(), runner.db)
			if err != nil {
				t.Fatalf("failed to read version: %v", err)
			}
			if version != 1 {
				t.Errorf("expected schema version 1, got %d", version)
			}

			if err := runner.Close(); err != nil {
				t.Errorf("expected no error closing, got %v", err)
			}
			if runner.db != nil {
				t.Error("expected owned database to be released")
			}
		})

		t.Run("leaves an injected database open", func(t *testing.T) {
			runner, _ := newTestRunner(t)
			db := runner.db

			if err := runner.Close(); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if err := db.Ping(); err != nil {
				t.Errorf("expected injected database to stay open, got %v", err)
			}
		})

		t.Run("rejects an unknown driver", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Database.Driver = "postgres"
			runner := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(io.Discard)})

			if _, err := runner.manager(t.Context()); !errors.Is(err, shared.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, true)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 6 {
			t.Errorf("expected 6 commands, got %d", len(commands))
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}

func TestCommands(t *testing.T) {
	t.Run("setup database", func(t *testing.T) {
		runner, output := newTestRunner(t)
		configPath := filepath.Join(t.TempDir(), "config.toml")

		err := newApp(runner).Run(t.Context(), []string{"playq", "--config", configPath, "setup", "database"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, configPath)
		if !strings.Contains(tu.MustReadFile(t, configPath), "[database]") {
			t.Error("expected config file created from template")
		}
		if !strings.Contains(output.String(), "schema version 1") {
			t.Errorf("expected schema version in output, got %q", output.String())
		}
	})

	t.Run("library seed", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := run(t, runner, "library", "seed"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Seeded 3 genres and 4 songs") {
			t.Errorf("unexpected output %q", output.String())
		}

		output.Reset()
		if err := run(t, runner, "library", "seed"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "nothing to seed") {
			t.Errorf("expected second seed to be skipped, got %q", output.String())
		}
	})

	t.Run("library import requires a directory", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		if err := run(t, runner, "library", "import"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("library import reports counts", func(t *testing.T) {
		runner, output := newTestRunner(t)
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "broken.mp3"), []byte("not really audio"), 0644)

		if err := run(t, runner, "library", "import", "--json", dir); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := output.String(); !strings.Contains(got, `"scanned":1`) || !strings.Contains(got, `"skipped":1`) {
			t.Errorf("unexpected import result %q", got)
		}
	})

	t.Run("genres and songs", func(t *testing.T) {
		runner, output := newTestRunner(t)
		tu.SeedCatalog(t, runner.db)

		if err := run(t, runner, "genres"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "Jazz\tJazz music\nPop\tPop music\nRock\tRock music\n"
		if got := output.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}

		output.Reset()
		if err := run(t, runner, "songs", "--genre", "Rock"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want = "1\tBohemian Rhapsody\tQueen\t5:54\n2\tStairway To Heaven\tLed Zeppelin\t8:02\n"
		if got := output.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("queue workflow", func(t *testing.T) {
		runner, output := newTestRunner(t)
		tu.SeedCatalog(t, runner.db)

		steps := []struct {
			args []string
			want string
		}{
			{[]string{"queue", "add", "--song", "1"}, "#1\tBohemian Rhapsody\tQueen\t5:54\tRock\n"},
			{
				[]string{"queue", "add", "--song", "2"},
				"#1\tBohemian Rhapsody\tQueen\t5:54\tRock\n#2\tStairway To Heaven\tLed Zeppelin\t8:02\tRock\n",
			},
			{[]string{"queue", "next"}, "#2\tStairway To Heaven\tLed Zeppelin\t8:02\tRock\n"},
			{[]string{"queue", "remove", "--id", "2"}, "queue is empty\n"},
			{[]string{"queue", "next"}, "queue is empty\n"},
			{[]string{"queue", "add", "--song", "3"}, "#3\tTake Five\tDave Brubeck\t5:24\tJazz\n"},
			{[]string{"queue", "show"}, "#3\tTake Five\tDave Brubeck\t5:24\tJazz\n"},
			{[]string{"queue", "clear"}, "queue is empty\n"},
		}

		for _, step := range steps {
			output.Reset()
			if err := run(t, runner, step.args...); err != nil {
				t.Fatalf("%v: expected no error, got %v", step.args, err)
			}
			if got := output.String(); got != step.want {
				t.Errorf("%v: expected %q, got %q", step.args, step.want, got)
			}
		}
	})

	t.Run("queue add with unknown song", func(t *testing.T) {
		runner, output := newTestRunner(t)

		err := run(t, runner, "queue", "add", "--song", "42")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if output.Len() != 0 {
			t.Errorf("expected no output, got %q", output.String())
		}
	})

	t.Run("queue export", func(t *testing.T) {
		runner, output := newTestRunner(t)
		songs := tu.SeedCatalog(t, runner.db)
		path := filepath.Join(t.TempDir(), "queue.md")

		if err := run(t, runner, "queue", "add", "--song", "4"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		output.Reset()
		if err := run(t, runner, "queue", "export", "--format", "md", "--output", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "Exported 1 songs") {
			t.Errorf("unexpected output %q", output.String())
		}
		if content := tu.MustReadFile(t, path); !strings.Contains(content, songs["Billie Jean"].Title) {
			t.Errorf("expected exported song, got:\n%s", content)
		}
	})

	t.Run("queue export rejects unknown formats", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		err := run(t, runner, "queue", "export", "--format", "pdf")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("queue show as JSON", func(t *testing.T) {
		runner, output := newTestRunner(t)

		if err := run(t, runner, "queue", "show", "--json"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := output.String(); got != "[]\n" {
			t.Errorf("expected empty JSON list, got %q", got)
		}
	})
}

func TestTextView(t *testing.T) {
	song := models.Song{ID: 1, Title: "Take Five", Artist: "Dave Brubeck", Duration: 324, Genre: tu.Jazz}
	snapshot := models.NewSnapshot(models.QueuedSong{QueueID: 7, Song: song})

	t.Run("renders a table", func(t *testing.T) {
		output := &bytes.Buffer{}
		view := &textView{r: NewRunner(RunnerOpts{Output: output}), format: formatTable}

		view.ShowQueue(snapshot)
		got := output.String()
		for _, want := range []string{"╭", "#7", "Take Five", "5:24", "1 songs"} {
			if !strings.Contains(got, want) {
				t.Errorf("expected %q in table:\n%s", want, got)
			}
		}
	})

	t.Run("footer keeps its case", func(t *testing.T) {
		got := renderTable([]string{"Title", "Count"}, [][]string{{"Jazz", "3"}}, []columnAlignment{alignLeft, alignRight}, []string{"total", "3 songs"})
		if !strings.Contains(got, "3 songs") {
			t.Errorf("expected lowercase footer in table:\n%s", got)
		}
		if strings.Contains(got, "SONGS") {
			t.Errorf("expected footer not to be upper-cased:\n%s", got)
		}
	})

	t.Run("keeps the first write error", func(t *testing.T) {
		view := &textView{r: NewRunner(RunnerOpts{Output: &tu.FWriter{}}), format: formatPlain}

		view.ShowQueue(snapshot)
		view.ShowSongs([]models.Song{song})
		if err := view.Err(); err == nil || !strings.Contains(err.Error(), "failed to write output") {
			t.Errorf("expected write error, got %v", err)
		}
	})

	t.Run("plain output is never a terminal for buffers", func(t *testing.T) {
		if isTerminal(&bytes.Buffer{}) {
			t.Error("expected buffer not to be a terminal")
		}
	})
}
