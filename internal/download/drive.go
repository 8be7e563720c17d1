package download

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// Drive endpoints and markers
const (
	DefaultBaseURL       = "https://drive.google.com"
	DownloadPathTemplate = "/uc?export=download&id=%s"
	ConfirmParam         = "confirm"
	WarningCookiePrefix  = "download_warning"
)

var (
	shareLinkPattern = regexp.MustCompile(`https://drive\.google\.com/file/d/([a-zA-Z0-9_-]+)/view`)
	filenameStarRe   = regexp.MustCompile(`filename\*=UTF-8''([^;]+)`)
	filenameQuotedRe = regexp.MustCompile(`filename="([^"]+)"`)
)

// ExtractFileID returns the file identifier embedded in a share link
func ExtractFileID(link string) (string, error) {
	match := shareLinkPattern.FindStringSubmatch(link)
	if match == nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidLink, link)
	}
	return match[1], nil
}

// warningToken returns the value of the large-file warning cookie, if any
func warningToken(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if strings.HasPrefix(c.Name, WarningCookiePrefix) {
			return c.Value
		}
	}
	return ""
}

// isHTML reports whether the provider answered with a page instead of a file
func isHTML(resp *http.Response) bool {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "text/html"
}

// confirmURL extracts the follow-up download URL from a confirmation page.
// Newer pages carry a form whose hidden inputs make up the query string,
// older ones a direct uc-download-link anchor.
func confirmURL(page io.Reader, pageURL string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return "", false
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}

	form := doc.Find("form#download-form").First()
	if form.Length() == 0 {
		form = doc.Find("form").FilterFunction(func(_ int, s *goquery.Selection) bool {
			action, _ := s.Attr("action")
			return strings.Contains(action, "download") || strings.Contains(action, "/uc")
		}).First()
	}
	if action, ok := form.Attr("action"); ok {
		target, err := base.Parse(action)
		if err != nil {
			return "", false
		}
		query := target.Query()
		form.Find("input[type=hidden]").Each(func(_ int, in *goquery.Selection) {
			name, _ := in.Attr("name")
			value, _ := in.Attr("value")
			if name != "" {
				query.Set(name, value)
			}
		})
		target.RawQuery = query.Encode()
		return target.String(), true
	}

	if href, ok := doc.Find("a#uc-download-link").First().Attr("href"); ok {
		target, err := base.Parse(href)
		if err != nil {
			return "", false
		}
		return target.String(), true
	}

	return "", false
}

// fileNameFromHeader picks the provider file name from a Content-Disposition
// header, preferring the UTF-8 filename* form, and falls back to fallback.
func fileNameFromHeader(contentDisposition, fallback string) string {
	name := ""
	if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
		name = params["filename"]
	}
	if name == "" {
		if m := filenameStarRe.FindStringSubmatch(contentDisposition); m != nil {
			if decoded, err := url.PathUnescape(m[1]); err == nil {
				name = decoded
			}
		}
	}
	if name == "" {
		if m := filenameQuotedRe.FindStringSubmatch(contentDisposition); m != nil {
			name = m[1]
		}
	}
	return sanitizeFileName(name, fallback)
}

// sanitizeFileName reduces name to a single NFC-normalized path element
func sanitizeFileName(name, fallback string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == "/" || name == ".." {
		return fallback
	}
	return norm.NFC.String(name)
}
