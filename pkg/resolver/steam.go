package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
)

// DefaultEndpoint is the Steam remote-storage published-file-details
// endpoint
const DefaultEndpoint = "https://api.steampowered.com/ISteamRemoteStorage/GetPublishedFileDetails/v1/"

// SteamOptions configures a SteamResolver
type SteamOptions struct {
	// Endpoint is the lookup URL; DefaultEndpoint when empty
	Endpoint string

	// Timeout bounds each lookup; 10s when zero
	Timeout time.Duration

	// Lowercase folds resolved titles to lower case
	Lowercase bool
}

// SteamResolver resolves workshop ids against the Steam API, one POST
// per id
type SteamResolver struct {
	endpoint  string
	lowercase bool
	client    *http.Client
}

// NewSteamResolver creates a resolver for the Steam workshop API
func NewSteamResolver(opts SteamOptions) *SteamResolver {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &SteamResolver{
		endpoint:  opts.Endpoint,
		lowercase: opts.Lowercase,
		client:    &http.Client{Timeout: opts.Timeout},
	}
}

// fileDetailsResponse mirrors the slice of the Steam response we care
// about: response.publishedfiledetails[0].title
type fileDetailsResponse struct {
	Response struct {
		PublishedFileDetails []struct {
			Title string `json:"title"`
		} `json:"publishedfiledetails"`
	} `json:"response"`
}

// Resolve looks up the title for one workshop id. Every failure mode
// (non-2xx status, malformed body, missing field) comes back as a
// RESOLUTION_FAILED error for that id only; nothing here is fatal to a
// larger run.
func (r *SteamResolver) Resolve(ctx context.Context, id string) (string, error) {
	logger := logging.GetLogger("resolver.steam")

	form := url.Values{}
	form.Set("itemcount", "1")
	form.Set("publishedfileids[0]", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrResolution, "unable to build lookup request for %s", id)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrResolution, "lookup request for %s failed", id)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.ErrResolution, "lookup for %s returned status %d", id, resp.StatusCode)
	}

	var details fileDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return "", errors.Wrapf(err, errors.ErrResolution, "malformed lookup response for %s", id)
	}

	if len(details.Response.PublishedFileDetails) == 0 {
		return "", errors.Newf(errors.ErrResolution, "lookup response for %s has no file details", id)
	}

	title := details.Response.PublishedFileDetails[0].Title
	if r.lowercase {
		title = strings.ToLower(title)
	}

	logger.Debug().Str("id", id).Str("title", title).Msg("resolved workshop title")
	return title, nil
}
