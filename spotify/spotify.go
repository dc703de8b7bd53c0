package spotify

import (
	"context"
	"log"

	spotify "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"afropulse/config"
)

type SpotifyClient struct {
	Client *spotify.Client
}

// ProvideSpotify builds a client using the client-credentials flow; search
// endpoints don't need user authorization.
func ProvideSpotify(cfg config.Config) *SpotifyClient {
	ctx := context.Background()
	creds := &clientcredentials.Config{
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := creds.Token(ctx)
	if err != nil {
		log.Fatalf("Failed to get Spotify token: %v", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &SpotifyClient{Client: spotify.New(httpClient)}
}

var Options = ProvideSpotify
