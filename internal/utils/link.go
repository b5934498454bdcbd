package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPlaylistLink = errors.New("invalid playlist URL")
	ErrInvalidUserLink     = errors.New("invalid user URL")
	ErrUnsupportedLink     = errors.New("unsupported URL type, use a Spotify playlist or user link")
)

// LinkKind says whether a Spotify URL points at a playlist or a user.
type LinkKind string

const (
	PlaylistLink LinkKind = "playlist"
	UserLink     LinkKind = "user"
)

// Link is a parsed Spotify web URL.
type Link struct {
	Kind LinkKind
	ID   string
}

var (
	playlistRe = regexp.MustCompile(`playlist/([a-zA-Z0-9]+)`)
	userRe     = regexp.MustCompile(`user/([a-zA-Z0-9]+)`)
)

// ParseLink extracts the playlist or user id from a Spotify web URL.
// Query strings and locale path segments are tolerated because the id is
// matched anywhere in the string. Playlist links win when a URL mentions both.
func ParseLink(url string) (Link, error) {
	switch {
	case strings.Contains(url, "playlist"):
		m := playlistRe.FindStringSubmatch(url)
		if m == nil {
			return Link{}, ErrInvalidPlaylistLink
		}
		return Link{Kind: PlaylistLink, ID: m[1]}, nil
	case strings.Contains(url, "user"):
		m := userRe.FindStringSubmatch(url)
		if m == nil {
			return Link{}, ErrInvalidUserLink
		}
		return Link{Kind: UserLink, ID: m[1]}, nil
	}
	return Link{}, ErrUnsupportedLink
}
