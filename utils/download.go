package utils

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// sniffLen is the number of bytes inspected when detecting the MIME type.
const sniffLen = 512

// DownloadFile downloads the resource found at url and saves it into a temporary file
// created inside dir. The caller is responsible for removing the returned file.
func DownloadFile(url, dir string) (*os.File, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download file from URI %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download file from URI %s: status %v", url, res.Status)
	}

	tmpfile, err := os.CreateTemp(dir, "iconpad-src-*.svg")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}

	// Copy the response body into the temporary file.
	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}

	// Reset the read pointer so the caller can consume the file from the start.
	if _, err := tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}

	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	head, err := readHead(fname, sniffLen)
	if err != nil {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(head), nil
}

// IsSVG reports whether the file is an SVG document, i.e. whether the first
// element of the XML stream is <svg>. Prologs, doctypes and comments of any
// length are skipped. Binary files are rejected by the MIME sniffer first.
func IsSVG(fname string) (bool, error) {
	file, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	br := bufio.NewReader(file)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return false, err
	}
	if !strings.HasPrefix(http.DetectContentType(head), "text/") {
		return false, nil
	}

	r := &trackingReader{r: br}
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false

	for {
		tok, err := dec.Token()
		if err != nil {
			// Failures of the file itself are reported, malformed content is
			// simply not an svg document.
			if r.err != nil && r.err != io.EOF {
				return false, r.err
			}
			return false, nil
		}
		if el, ok := tok.(xml.StartElement); ok {
			return strings.EqualFold(el.Name.Local, "svg"), nil
		}
	}
}

// trackingReader remembers the last error returned by the underlying reader.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil {
		t.err = err
	}
	return n, err
}

// readHead returns at most the first n bytes of the file.
func readHead(fname string, n int) ([]byte, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	buffer := make([]byte, n)
	read, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}

	return buffer[:read], nil
}
