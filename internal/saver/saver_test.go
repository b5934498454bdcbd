package saver

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HaxnovR/spotisave/internal/playlist"
)

type fakeSource struct {
	playlists map[string]playlist.Playlist
	byUser    map[string][]playlist.Playlist
}

func (f *fakeSource) Playlist(_ context.Context, id string) (playlist.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return playlist.Playlist{}, fmt.Errorf("no such playlist: %s", id)
	}
	return p, nil
}

func (f *fakeSource) PlaylistTracks(_ context.Context, id string) ([]playlist.Track, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, fmt.Errorf("no such playlist: %s", id)
	}
	return p.Tracks, nil
}

func (f *fakeSource) UserPlaylists(_ context.Context, userID string) ([]playlist.Playlist, error) {
	playlists, ok := f.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("no such user: %s", userID)
	}
	return playlists, nil
}

func newFakeSource() *fakeSource {
	morning := playlist.Playlist{
		ID:   "pl1",
		Name: "Morning Mix",
		Tracks: []playlist.Track{
			{
				Name:        "Holiday",
				Artists:     []string{"Bee Gees"},
				Album:       "Bee Gees' 1st",
				ReleaseDate: "1967-07-14",
				Duration:    173000,
				Popularity:  55,
				AddedAt:     "2024-01-02T03:04:05Z",
				URL:         "https://open.spotify.com/track/abc",
			},
			{
				Name:     "Breathe",
				Artists:  []string{"Télépopmusik", "Angela McCluskey"},
				Album:    "Genetic World",
				Duration: 278000,
				Explicit: true,
			},
		},
	}
	unnamed := playlist.Playlist{ID: "pl2", Name: "日本語"}
	return &fakeSource{
		playlists: map[string]playlist.Playlist{"pl1": morning, "pl2": unnamed},
		byUser: map[string][]playlist.Playlist{
			"wizzler": {
				{ID: "pl1", Name: "Morning Mix", TrackCount: 2},
				{ID: "pl2", Name: "日本語"},
			},
		},
	}
}

func readCsv(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\uFEFF")))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestSavePlaylist(t *testing.T) {
	dir := t.TempDir()
	s := New(newFakeSource())

	files, err := s.SavePlaylist(context.Background(), "pl1", Options{OutDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{filepath.Join(dir, "Morning_Mix.csv")}
	if len(files) != 1 || files[0] != expected[0] {
		t.Fatalf("SavePlaylist files == %v != %v", files, expected)
	}

	rows := readCsv(t, files[0])
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 track rows, got %d rows", len(rows))
	}
	if rows[0][0] != "Track Name" || rows[0][len(rows[0])-1] != "Track URL" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Holiday" || rows[1][1] != "Bee Gees" {
		t.Errorf("unexpected first track row: %v", rows[1])
	}
	if rows[2][1] != "Télépopmusik, Angela McCluskey" {
		t.Errorf("artists not joined with comma: %v", rows[2])
	}
}

func TestSavePlaylistWithExcel(t *testing.T) {
	dir := t.TempDir()
	s := New(newFakeSource())

	files, err := s.SavePlaylist(context.Background(), "pl1", Options{OutDir: dir, Excel: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Fatalf("expected csv and xlsx, got %v", files)
	}
	if filepath.Ext(files[1]) != ".xlsx" {
		t.Errorf("second file should be the workbook: %v", files[1])
	}
	if _, err := os.Stat(files[1]); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestSavePlaylistNameFallback(t *testing.T) {
	dir := t.TempDir()
	s := New(newFakeSource())

	// "日本語" sanitizes to nothing, the id keeps the filename usable.
	files, err := s.SavePlaylist(context.Background(), "pl2", Options{OutDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	expected := filepath.Join(dir, "playlist_pl2.csv")
	if len(files) != 1 || files[0] != expected {
		t.Errorf("SavePlaylist files == %v != %v", files, []string{expected})
	}
}

func TestSaveUserPlaylists(t *testing.T) {
	dir := t.TempDir()
	s := New(newFakeSource())

	files, err := s.SaveUserPlaylists(context.Background(), "wizzler", Options{OutDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	userDir := filepath.Join(dir, "wizzlers_spotify_playlist_data")
	if info, err := os.Stat(userDir); err != nil || !info.IsDir() {
		t.Fatalf("per-user directory not created: %v", err)
	}

	expected := []string{
		filepath.Join(userDir, "Morning_Mix.csv"),
		filepath.Join(userDir, "playlist_pl2.csv"),
	}
	if len(files) != len(expected) {
		t.Fatalf("SaveUserPlaylists files == %v != %v", files, expected)
	}
	for i, file := range expected {
		if files[i] != file {
			t.Errorf("files[%d] == %v != %v", i, files[i], file)
		}
	}

	rows := readCsv(t, expected[0])
	if len(rows) != 3 {
		t.Errorf("expected header + 2 track rows, got %d rows", len(rows))
	}
}

func TestSaveUserPlaylistsUnknownUser(t *testing.T) {
	s := New(newFakeSource())
	if _, err := s.SaveUserPlaylists(context.Background(), "nobody", Options{OutDir: t.TempDir()}); err == nil {
		t.Error("expected error for unknown user")
	}
}
