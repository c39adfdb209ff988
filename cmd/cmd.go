// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

// setupCommand handles setup operations for the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create the config file if missing, initialize the database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// libraryCommand fills the catalog
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Catalog maintenance",
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Populate an empty catalog with sample genres and songs",
				Action: r.LibrarySeed,
			},
			{
				Name:  "import",
				Usage: "Import songs from the tags of audio files under a directory",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "dir",
					},
				},
				Flags:  outputFlags(),
				Action: r.LibraryImport,
			},
		},
	}
}

// genresCommand lists the catalog genres
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "genres",
		Usage:  "List catalog genres",
		Flags:  outputFlags(),
		Action: r.Genres,
	}
}

// songsCommand lists the songs of one genre
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "List the songs of a genre",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "genre",
				Aliases:  []string{"g"},
				Usage:    "Genre name",
				Required: true,
			},
		}, outputFlags()...),
		Action: r.Songs,
	}
}

// queueCommand handles play queue operations. Every subcommand prints the resulting queue.
func queueCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "queue",
		Aliases: []string{"q"},
		Usage:   "Play queue operations",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the play queue",
				Flags:  outputFlags(),
				Action: r.QueueShow,
			},
			{
				Name:  "add",
				Usage: "Append a song to the queue",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:     "song",
						Aliases:  []string{"s"},
						Usage:    "Song ID",
						Required: true,
					},
				}, outputFlags()...),
				Action: r.QueueAdd,
			},
			{
				Name:   "next",
				Usage:  "Drop the song at the front of the queue",
				Flags:  outputFlags(),
				Action: r.QueueNext,
			},
			{
				Name:  "remove",
				Usage: "Remove one queue entry by its queue ID",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Queue ID",
						Required: true,
					},
				}, outputFlags()...),
				Action: r.QueueRemove,
			},
			{
				Name:   "clear",
				Usage:  "Remove every queue entry",
				Flags:  outputFlags(),
				Action: r.QueueClear,
			},
			{
				Name:  "export",
				Usage: "Write the play queue to a CSV, Markdown or text file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, md, txt)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: play_queue.<format>)",
					},
				},
				Action: r.QueueExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive queue management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive library browser",
		Action:  r.TUI,
	}
}
