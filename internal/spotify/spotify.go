// 1. Register an application at: https://developer.spotify.com/my-applications/
//
// 2. Set the SPOTIFY_CLIENT_ID environment variable to the client ID you got in step 1.
// 3. Set the SPOTIFY_CLIENT_SECRET environment variable to the client secret from step 1.
//
// Spotisave only reads public data, so the client-credentials flow is enough
// and no user ever has to log in.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/HaxnovR/spotisave/internal/playlist"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when the client ID or secret is not set.
var ErrMissingCredentials = errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set")

// Spotify caps page sizes at 50 items.
const pageLimit = 50

// Source fetches public playlist metadata from the Spotify Web API.
type Source struct {
	client *spotify.Client
}

// NewSource reads credentials from the environment and authenticates with the
// client-credentials flow. A bad client ID or secret fails here, before any
// playlist is touched.
func NewSource(ctx context.Context) (*Source, error) {
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify authentication failed: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &Source{client: spotify.New(httpClient)}, nil
}

// Playlist retrieves a playlist's display name together with its full,
// ordered track list.
func (s *Source) Playlist(ctx context.Context, id string) (playlist.Playlist, error) {
	p, err := s.client.GetPlaylist(ctx, spotify.ID(id))
	if err != nil {
		return playlist.Playlist{}, fmt.Errorf("error getting playlist %s: %w", id, err)
	}

	tracks, err := s.PlaylistTracks(ctx, id)
	if err != nil {
		return playlist.Playlist{}, err
	}

	return playlist.Playlist{
		ID:         string(p.ID),
		Name:       p.Name,
		TrackCount: int(p.Tracks.Total),
		Tracks:     tracks,
	}, nil
}

// PlaylistTracks retrieves all tracks in a playlist with pagination support.
func (s *Source) PlaylistTracks(ctx context.Context, id string) ([]playlist.Track, error) {
	var tracks []playlist.Track
	offset := 0

	for {
		page, err := s.client.GetPlaylistItems(
			ctx,
			spotify.ID(id),
			spotify.Limit(pageLimit),
			spotify.Offset(offset),
		)
		if err != nil {
			return nil, fmt.Errorf("error getting playlist items: %w", err)
		}

		for _, item := range page.Items {
			if track, ok := toTrack(item); ok {
				tracks = append(tracks, track)
			}
		}

		if len(page.Items) < pageLimit {
			break
		}
		offset += pageLimit
	}

	return tracks, nil
}

// UserPlaylists retrieves summaries of all public playlists of a user with
// pagination support. Track lists are fetched separately per playlist.
func (s *Source) UserPlaylists(ctx context.Context, userID string) ([]playlist.Playlist, error) {
	var playlists []playlist.Playlist
	offset := 0

	for {
		page, err := s.client.GetPlaylistsForUser(
			ctx,
			userID,
			spotify.Limit(pageLimit),
			spotify.Offset(offset),
		)
		if err != nil {
			return nil, fmt.Errorf("error getting playlists for user %s: %w", userID, err)
		}

		for _, p := range page.Playlists {
			playlists = append(playlists, playlist.Playlist{
				ID:         string(p.ID),
				Name:       p.Name,
				TrackCount: int(p.Tracks.Total),
			})
		}

		if len(page.Playlists) < pageLimit {
			break
		}
		offset += pageLimit
	}

	return playlists, nil
}

// toTrack converts one playlist item. Episodes and removed tracks come back
// without track data and are skipped.
func toTrack(item spotify.PlaylistItem) (playlist.Track, bool) {
	track := item.Track.Track
	if track == nil {
		return playlist.Track{}, false
	}

	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	url := track.ExternalURLs["spotify"]
	if url == "" {
		url = fmt.Sprintf("https://open.spotify.com/track/%s", track.ID)
	}

	return playlist.Track{
		Name:        track.Name,
		Artists:     artists,
		Album:       track.Album.Name,
		ReleaseDate: track.Album.ReleaseDate,
		Duration:    int(track.Duration),
		Popularity:  int(track.Popularity),
		Explicit:    track.Explicit,
		AddedAt:     item.AddedAt,
		URL:         url,
	}, true
}
