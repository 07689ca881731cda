// Package resume describes the static resume PDF served next to the page.
package resume

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ledongthuc/pdf"
)

// Asset is the fixed-path resume document and the filename suggested when it
// is downloaded.
type Asset struct {
	Path         string
	DownloadName string
}

// ViewerURL returns the asset path with a cache-busting query so every page
// load asks for a fresh copy.
func (a Asset) ViewerURL(now time.Time) string {
	u := url.URL{Path: a.Path, RawQuery: "t=" + strconv.FormatInt(now.UnixMilli(), 10)}
	return u.String()
}

// Href returns the plain link to the asset.
func (a Asset) Href() string {
	u := url.URL{Path: a.Path}
	return u.String()
}

// Info summarizes a resume file on disk.
type Info struct {
	Pages int
	Size  int64
}

// Inspect opens the PDF at path and reports its page count.
func Inspect(path string) (Info, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening resume %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("stat resume %s: %w", path, err)
	}
	pages := r.NumPage()
	if pages == 0 {
		return Info{Size: st.Size()}, fmt.Errorf("resume %s has no pages", path)
	}
	return Info{Pages: pages, Size: st.Size()}, nil
}

// Exists reports whether path is a regular file.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
