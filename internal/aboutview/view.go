// Package aboutview fetches the about profile from the API and renders it as
// an HTML fragment.
package aboutview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"sync"

	"messageboard/internal/models"
)

type State int

const (
	Loading State = iota
	Loaded
	Errored
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var errBadStatus = errors.New("Network response was not ok")

// View holds the state of one about view. Mount performs the single fetch;
// Render draws whatever state the view is in.
type View struct {
	base   string
	client *http.Client
	once   sync.Once

	mu    sync.Mutex
	state State
	data  models.About
	err   string
}

// New returns a view in the Loading state. An empty base fetches from the
// same origin. A nil client uses http.DefaultClient.
func New(base string, client *http.Client) *View {
	if client == nil {
		client = http.DefaultClient
	}
	return &View{base: strings.TrimRight(base, "/"), client: client}
}

// Mount fetches the about payload. Only the first call does anything.
func (v *View) Mount(ctx context.Context) {
	v.once.Do(func() {
		about, err := v.fetch(ctx)
		v.mu.Lock()
		defer v.mu.Unlock()
		if err != nil {
			v.state = Errored
			v.err = err.Error()
			return
		}
		v.state = Loaded
		v.data = about
	})
}

func (v *View) fetch(ctx context.Context) (models.About, error) {
	var about models.About
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.base+"/api/about", nil)
	if err != nil {
		return about, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return about, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return about, errBadStatus
	}
	if err := json.NewDecoder(resp.Body).Decode(&about); err != nil {
		return about, fmt.Errorf("failed to parse about response: %w", err)
	}
	return about, nil
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Err is the error text shown in the Errored state.
func (v *View) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *View) Data() models.About {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data
}

// ResolveImage leaves absolute http(s) URLs alone and prefixes base otherwise.
func ResolveImage(base, imageURL string) string {
	if imageURL == "" || strings.HasPrefix(imageURL, "http") {
		return imageURL
	}
	return strings.TrimRight(base, "/") + imageURL
}

var viewTmpl = template.Must(template.New("about").Parse(
	`{{if eq .State "loading"}}<div class="About-loading">Loading...</div>` +
		`{{else if eq .State "errored"}}<div class="About-error">Error: {{.Err}}</div>` +
		`{{else}}<div class="About-container"><h1>{{.Title}}</h1><div class="About-content">` +
		`<img class="About-photo" src="{{.Image}}" alt="About"><div class="About-text">` +
		`{{range .Paragraphs}}<p>{{.}}</p>{{end}}</div></div></div>{{end}}`))

func (v *View) Render(w io.Writer) error {
	v.mu.Lock()
	data := struct {
		State      string
		Err        string
		Title      string
		Image      string
		Paragraphs []string
	}{
		State:      v.state.String(),
		Err:        v.err,
		Title:      v.data.Title,
		Image:      ResolveImage(v.base, v.data.ImageURL),
		Paragraphs: v.data.Paragraphs,
	}
	v.mu.Unlock()
	return viewTmpl.Execute(w, data)
}
