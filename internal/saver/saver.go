package saver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/HaxnovR/spotisave/internal/playlist"
	"github.com/HaxnovR/spotisave/internal/utils"
)

// Source is the slice of the Spotify API the saver needs. It is satisfied by
// spotify.Source and by fakes in tests.
type Source interface {
	Playlist(ctx context.Context, id string) (playlist.Playlist, error)
	PlaylistTracks(ctx context.Context, id string) ([]playlist.Track, error)
	UserPlaylists(ctx context.Context, userID string) ([]playlist.Playlist, error)
}

// Options control where and how the exported files are written.
type Options struct {
	OutDir string // base directory, "." when empty
	Excel  bool   // also write an .xlsx workbook per playlist
}

// Saver fetches playlist metadata through a Source and serializes it to
// spreadsheet files, one file set per playlist.
type Saver struct {
	source Source
}

// New creates a new Saver backed by the given source.
func New(source Source) *Saver {
	return &Saver{source: source}
}

// SavePlaylist exports a single playlist and returns the paths written.
func (s *Saver) SavePlaylist(ctx context.Context, id string, opts Options) ([]string, error) {
	p, err := s.source.Playlist(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.write(p, opts.dir(), opts.Excel)
}

// SaveUserPlaylists exports every public playlist of a user into a per-user
// directory and returns the paths written. Playlists whose names sanitize to
// the same filename overwrite each other, last one wins.
func (s *Saver) SaveUserPlaylists(ctx context.Context, userID string, opts Options) ([]string, error) {
	playlists, err := s.source.UserPlaylists(ctx, userID)
	if err != nil {
		return nil, err
	}

	dirName := utils.SanitizeFilename(fmt.Sprintf("%s's spotify playlist data", userID))
	dir := filepath.Join(opts.dir(), dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	var files []string
	for _, p := range playlists {
		fmt.Printf("Fetching: %s\n", p.Name)
		tracks, err := s.source.PlaylistTracks(ctx, p.ID)
		if err != nil {
			return files, err
		}
		p.Tracks = tracks

		written, err := s.write(p, dir, opts.Excel)
		if err != nil {
			return files, err
		}
		files = append(files, written...)
	}

	return files, nil
}

// write serializes one playlist to CSV, and optionally XLSX, inside dir.
func (s *Saver) write(p playlist.Playlist, dir string, excel bool) ([]string, error) {
	base := utils.SanitizeFilename(p.Name)
	if base == "" {
		base = "playlist_" + p.ID
	}

	headers := utils.StructToCsvHeader(reflect.TypeOf(playlist.Track{}))
	records, err := utils.StructToCsvRecords(p.Tracks)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(dir, base+".csv")
	if err := utils.WriteToCsvFile(csvPath, headers, records); err != nil {
		return nil, fmt.Errorf("error writing CSV file: %w", err)
	}
	files := []string{csvPath}
	fmt.Printf("Saved to %s\n", csvPath)

	if excel {
		xlsxPath := filepath.Join(dir, base+".xlsx")
		if err := utils.WriteToExcelFile(xlsxPath, base, headers, records); err != nil {
			return files, fmt.Errorf("error writing Excel file: %w", err)
		}
		files = append(files, xlsxPath)
		fmt.Printf("Saved to %s\n", xlsxPath)
	}

	return files, nil
}

func (o Options) dir() string {
	if o.OutDir == "" {
		return "."
	}
	return o.OutDir
}
