// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// serveCommand runs the HTTP conversion service
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP conversion server",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: r.Serve,
	}
}

// convertCommand runs a single conversion from the command line
func convertCommand(r *Runner) *cli.Command {
	jsonFlag := &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}

	return &cli.Command{
		Name:    "convert",
		Aliases: []string{"conv"},
		Usage:   "One-shot track link conversion",
		Commands: []*cli.Command{
			{
				Name:    "spotify-to-youtube",
				Aliases: []string{"s2y"},
				Usage:   "Convert a Spotify track URL to a YouTube Music URL",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "url"},
				},
				Flags:  []cli.Flag{configFlag(), jsonFlag},
				Action: r.ConvertSpotifyToYouTube,
			},
			{
				Name:    "youtube-to-spotify",
				Aliases: []string{"y2s"},
				Usage:   "Convert a YouTube watch URL to a Spotify track URL",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "url"},
				},
				Flags:  []cli.Flag{configFlag(), jsonFlag},
				Action: r.ConvertYouTubeToSpotify,
			},
		},
	}
}

// setupCommand initializes configuration and the cache database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a config file and initialize the cache database",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: r.Setup,
	}
}

// cacheCommand inspects and clears the track metadata cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Track metadata cache operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List cached tracks",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheList,
			},
			{
				Name:  "clear",
				Usage: "Remove all cached tracks",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.CacheClear,
			},
		},
	}
}
