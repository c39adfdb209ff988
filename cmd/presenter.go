package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/playq/internal/controllers"
	"github.com/desertthunder/playq/internal/models"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

var _ controllers.View = (*textView)(nil)

type outputFormat int

const (
	formatPlain outputFormat = iota
	formatTable
	formatJSON
)

// textView prints whatever the controllers publish to the runner's output.
//
// Tables are drawn only on a terminal; redirected output gets tab separated lines.
type textView struct {
	r      *Runner
	format outputFormat
	pretty bool
	err    error
}

func (r *Runner) newTextView(cmd *cli.Command) *textView {
	v := &textView{r: r, format: formatPlain, pretty: cmd.Bool("pretty")}
	switch {
	case cmd.Bool("json"):
		v.format = formatJSON
	case isTerminal(r.output):
		v.format = formatTable
	}
	return v
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Err returns the first write failure
func (v *textView) Err() error { return v.err }

func (v *textView) ShowGenres(genres []models.Genre) {
	if v.format == formatJSON {
		v.json(genres)
		return
	}

	rows := make([][]string, len(genres))
	for i, g := range genres {
		rows[i] = []string{g.Name, g.Description}
	}
	v.rows([]string{"Genre", "Description"}, rows, nil, nil, "no genres")
}

func (v *textView) ShowSongs(songs []models.Song) {
	if v.format == formatJSON {
		v.json(songs)
		return
	}

	rows := make([][]string, len(songs))
	for i, s := range songs {
		rows[i] = []string{strconv.FormatInt(s.ID, 10), s.Title, s.Artist, s.FormatDuration()}
	}
	v.rows(
		[]string{"ID", "Title", "Artist", "Length"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
		nil,
		"no songs",
	)
}

func (v *textView) ShowQueue(snapshot models.Snapshot) {
	if v.format == formatJSON {
		entries := snapshot.Entries()
		if entries == nil {
			entries = []models.QueuedSong{}
		}
		v.json(entries)
		return
	}

	rows := make([][]string, 0, snapshot.Len())
	for id, s := range snapshot.All() {
		rows = append(rows, []string{fmt.Sprintf("#%d", id), s.Title, s.Artist, s.FormatDuration(), s.Genre.Name})
	}
	v.rows(
		[]string{"Queue", "Title", "Artist", "Length", "Genre"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
		[]string{"", fmt.Sprintf("%d songs", snapshot.Len()), "", models.FormatSeconds(snapshot.TotalDuration()), ""},
		"queue is empty",
	)
}

func (v *textView) rows(headers []string, rows [][]string, aligns []columnAlignment, footer []string, empty string) {
	if len(rows) == 0 {
		v.write("%s\n", empty)
		return
	}

	if v.format == formatTable {
		v.write("%s\n", renderTable(headers, rows, aligns, footer))
		return
	}

	for _, row := range rows {
		v.write("%s\n", strings.Join(row, "\t"))
	}
}

func (v *textView) json(data any) {
	if v.err != nil {
		return
	}
	v.err = v.r.writeJSON(data, v.pretty)
}

func (v *textView) write(format string, args ...any) {
	if v.err != nil {
		return
	}
	v.err = v.r.writePlain(format, args...)
}
