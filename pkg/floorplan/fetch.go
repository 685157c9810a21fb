package floorplan

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher retrieves the two external documents the viewer consumes: the
// metadata table (once) and one scene document per floor. Both are opaque
// byte payloads to the caller.
type Fetcher interface {
	Metadata() ([]byte, error)
	Scene(floor int) ([]byte, error)
}

// DirFetcher serves assets from a local directory: metadata.json and
// floor<N>.svg.
type DirFetcher struct {
	Dir string
}

func (f DirFetcher) Metadata() ([]byte, error) {
	return os.ReadFile(filepath.Join(f.Dir, "metadata.json"))
}

func (f DirFetcher) Scene(floor int) ([]byte, error) {
	return os.ReadFile(filepath.Join(f.Dir, fmt.Sprintf("floor%d.svg", floor)))
}

// HTTPFetcher fetches assets from a base URL using the same naming scheme
// as DirFetcher.
type HTTPFetcher struct {
	Base   string
	Client *http.Client
}

func (f HTTPFetcher) Metadata() ([]byte, error) {
	return f.get("metadata.json")
}

func (f HTTPFetcher) Scene(floor int) ([]byte, error) {
	return f.get(fmt.Sprintf("floor%d.svg", floor))
}

func (f HTTPFetcher) get(name string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimRight(f.Base, "/") + "/" + name

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", name, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// NewFetcher picks DirFetcher or HTTPFetcher depending on whether the
// location looks like a URL.
func NewFetcher(location string) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPFetcher{Base: location}
	}
	return DirFetcher{Dir: location}
}
