package actions

import (
	"context"
	"fmt"

	"github.com/HaxnovR/spotisave/internal/saver"
	"github.com/HaxnovR/spotisave/internal/spotify"
	"github.com/HaxnovR/spotisave/internal/utils"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v2"
)

// Export is the CLI action: parse the URL, authenticate against the Spotify
// API, and write one file set per playlist.
func Export(c *cli.Context) error {
	url := c.Args().First()
	if url == "" {
		if err := huh.NewInput().
			Title("Enter a Spotify playlist or user URL").
			Value(&url).
			Run(); err != nil {
			return err
		}
	}

	link, err := utils.ParseLink(url)
	if err != nil {
		return err
	}

	ctx := context.Background()
	source, err := spotify.NewSource(ctx)
	if err != nil {
		return err
	}

	s := saver.New(source)
	opts := saver.Options{
		OutDir: c.String("out"),
		Excel:  c.Bool("xls"),
	}

	switch link.Kind {
	case utils.PlaylistLink:
		export := func(ctx context.Context) error {
			_, err := s.SavePlaylist(ctx, link.ID, opts)
			return err
		}
		return spinner.New().Title("Fetching playlist...").Context(ctx).ActionWithErr(export).Run()
	case utils.UserLink:
		fmt.Printf("Fetching playlists for user: %s\n", link.ID)
		_, err := s.SaveUserPlaylists(ctx, link.ID, opts)
		return err
	}

	return utils.ErrUnsupportedLink
}
