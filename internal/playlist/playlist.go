package playlist

// Track represents a single playlist entry with the metadata columns the
// exporter writes. Values are taken verbatim from the Spotify API response.
type Track struct {
	Name        string   `csv:"Track Name"`
	Artists     []string `csv:"Artists"`
	Album       string   `csv:"Album"`
	ReleaseDate string   `csv:"Release Date"`
	Duration    int      `csv:"Duration (ms)"`
	Popularity  int      `csv:"Popularity"`
	Explicit    bool     `csv:"Explicit"`
	AddedAt     string   `csv:"Added At"`
	URL         string   `csv:"Track URL"`
}

// Playlist represents an ordered collection of tracks
type Playlist struct {
	ID         string
	Name       string
	TrackCount int
	Tracks     []Track
}

// User groups the public playlists of a Spotify account
type User struct {
	ID        string
	Playlists []Playlist
}
