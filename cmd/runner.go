package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/trackbridge/internal/converter"
	"github.com/desertthunder/trackbridge/internal/models"
	"github.com/desertthunder/trackbridge/internal/repositories"
	"github.com/desertthunder/trackbridge/internal/server"
	"github.com/desertthunder/trackbridge/internal/services"
	"github.com/desertthunder/trackbridge/internal/shared"
	"github.com/desertthunder/trackbridge/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	logger   *log.Logger
	output   io.Writer
	palette  *ui.Palette
	pipeline server.Pipeline
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Pipeline overrides the converter built from configuration; tests inject a
// fake through it.
type RunnerOpts struct {
	Logger   *log.Logger
	Output   io.Writer
	Palette  *ui.Palette
	Pipeline server.Pipeline
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Palette == nil {
		opts.Palette = ui.DefaultPalette()
	}

	return &Runner{
		logger:   opts.Logger,
		output:   opts.Output,
		palette:  opts.Palette,
		pipeline: opts.Pipeline,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, convertCommand, setupCommand, cacheCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig reads the configuration file and overlays environment secrets.
func (r *Runner) loadConfig(path string) *shared.Config {
	config := shared.DefaultConfig()
	if path != "" {
		if loaded, err := shared.LoadConfig(path); err == nil {
			config = loaded
		} else {
			r.logger.Warn("using default config", "path", path, "err", err)
		}
	}

	config.ApplySecrets()
	return config
}

// spotifyTokens selects the credential strategy: a static pre-issued token
// when configured, otherwise the refreshing client-credentials cache.
func spotifyTokens(config *shared.Config) services.TokenSource {
	spotify := config.Credentials.Spotify
	if spotify.StaticToken != "" {
		return services.NewStaticTokenSource(spotify.StaticToken)
	}
	return services.NewSpotifyTokenCache(spotify.ClientID, spotify.ClientSecret)
}

// openCache opens the sqlite cache database and runs migrations.
func (r *Runner) openCache(config *shared.Config) (*sql.DB, error) {
	if config.Database.Path == "" {
		return nil, nil
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, err
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// buildPipeline assembles the conversion pipeline from configuration.
//
// The returned database is nil when caching is disabled; the caller owns
// closing it otherwise.
func (r *Runner) buildPipeline(config *shared.Config) (server.Pipeline, *sql.DB, error) {
	if r.pipeline != nil {
		return r.pipeline, nil, nil
	}

	if err := config.ValidateCredentials(); err != nil {
		return nil, nil, err
	}

	db, err := r.openCache(config)
	if err != nil {
		return nil, nil, err
	}

	var cache converter.TrackCache
	if db != nil {
		cache = repositories.NewTrackCacheAdapter(repositories.NewTrackRepository(db))
	}

	pipeline := converter.NewConverter(converter.ConverterOpts{
		Spotify: services.NewSpotifyService(spotifyTokens(config), ""),
		Youtube: services.NewYouTubeService(config.Credentials.YouTube.APIKey, ""),
		Cache:   cache,
		Logger:  r.logger,
	})

	return pipeline, db, nil
}

// Serve runs the HTTP conversion server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	pipeline, db, err := r.buildPipeline(config)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	router := server.NewRouter(server.RouterOpts{
		Pipeline:  pipeline,
		DB:        db,
		StaticDir: config.Server.StaticDir,
		Limiter:   server.NewGlobalLimiter(config.Limits.Requests, config.Limits.WindowMinutes),
		Logger:    r.logger,
	})

	srv := server.NewServer(config.Server.Host, config.Server.Port, router)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		r.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ConvertSpotifyToYouTube converts a single Spotify track URL.
func (r *Runner) ConvertSpotifyToYouTube(ctx context.Context, cmd *cli.Command) error {
	return r.convert(ctx, cmd, func(p server.Pipeline) pipelineFunc {
		return p.SpotifyToYouTube
	})
}

// ConvertYouTubeToSpotify converts a single YouTube watch URL.
func (r *Runner) ConvertYouTubeToSpotify(ctx context.Context, cmd *cli.Command) error {
	return r.convert(ctx, cmd, func(p server.Pipeline) pipelineFunc {
		return p.YouTubeToSpotify
	})
}

type pipelineFunc func(ctx context.Context, sourceURL string) (*models.ConversionResult, error)

func (r *Runner) convert(ctx context.Context, cmd *cli.Command, pick func(server.Pipeline) pipelineFunc) error {
	sourceURL := cmd.StringArg("url")
	if sourceURL == "" {
		return fmt.Errorf("%w: url argument required", shared.ErrInvalidURL)
	}

	config := r.loadConfig(cmd.String("config"))

	pipeline, db, err := r.buildPipeline(config)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	result, err := pick(pipeline)(ctx, sourceURL)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.renderResult(result)
	return nil
}

// renderResult prints a conversion result with the runner's palette.
func (r *Runner) renderResult(result *models.ConversionResult) {
	p := r.palette

	fmt.Fprintln(r.output, p.Title("Conversion result"))
	fmt.Fprintf(r.output, "%s %s - %s\n", p.Help("track"), result.TrackInfo.Title, result.TrackInfo.Artist)
	if result.TrackInfo.Album != "" {
		fmt.Fprintf(r.output, "%s %s\n", p.Help("album"), result.TrackInfo.Album)
	}

	if result.Matched() {
		fmt.Fprintf(r.output, "%s %s\n", p.Help("url"), p.OK(result.DestinationURL))
		fmt.Fprintf(r.output, "%s %s\n", p.Help("confidence"), p.Confidence(result.MatchConfidence))
	} else {
		fmt.Fprintln(r.output, p.Err("no match found"))
	}
}

// Setup creates a config file and initializes the cache database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		r.logger.Warn("config file not created", "path", path, "err", err)
	} else {
		r.logger.Info("created config file", "path", path)
	}

	config := r.loadConfig(path)

	db, err := r.openCache(config)
	if err != nil {
		return err
	}
	if db == nil {
		r.logger.Warn("no database path configured, skipping migrations")
		return nil
	}
	defer db.Close()

	r.logger.Info("database ready", "path", config.Database.Path)
	return nil
}

// cachedTrackRow shapes a cached track for output.
type cachedTrackRow struct {
	ID        string `json:"id"`
	Service   string `json:"service"`
	ServiceID string `json:"service_id"`
	models.TrackInfo
	CreatedAt time.Time `json:"created_at"`
}

// CacheList prints all cached tracks.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	db, err := r.openCache(config)
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("%w: database path not configured", shared.ErrMissingConfig)
	}
	defer db.Close()

	tracks, err := repositories.NewTrackRepository(db).List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		rows := make([]cachedTrackRow, len(tracks))
		for i, track := range tracks {
			rows[i] = cachedTrackRow{
				ID:        track.ID(),
				Service:   track.Service(),
				ServiceID: track.ServiceID(),
				TrackInfo: track.Info(),
				CreatedAt: track.CreatedAt(),
			}
		}
		return r.writeJSON(rows, true)
	}

	if len(tracks) == 0 {
		fmt.Fprintln(r.output, r.palette.Help("cache is empty"))
		return nil
	}

	for _, track := range tracks {
		info := track.Info()
		fmt.Fprintf(r.output, "%3d  %-8s %-24s %s - %s\n",
			track.Sequence(), track.Service(), track.ServiceID(), info.Title, info.Artist)
	}

	return nil
}

// CacheClear removes all cached tracks.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	db, err := r.openCache(config)
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("%w: database path not configured", shared.ErrMissingConfig)
	}
	defer db.Close()

	if err := repositories.NewTrackRepository(db).Clear(); err != nil {
		return err
	}

	r.logger.Info("track cache cleared")
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}
