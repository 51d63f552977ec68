// Package wikimedia resolves Wikimedia Commons file references to image URLs.
package wikimedia

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

// COMMONS_BASE is the root URL for Wikimedia Commons uploads.
const COMMONS_BASE string = "https://upload.wikimedia.org/wikipedia/commons"

// DEFAULT_WIDTH is the pixel width assigned to depiction thumbnails.
const DEFAULT_WIDTH int = 800

// ThumbnailURL resolves a Commons file name to its thumbnail URL at 'width'
// pixels, following the Commons path convention: spaces become underscores
// and the file is sharded under the first one and two hex digits of the MD5
// digest of its name.
func ThumbnailURL(name string, width int) string {

	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")

	sum := md5.Sum([]byte(name))
	digest := hex.EncodeToString(sum[:])

	enc := url.PathEscape(name)

	return fmt.Sprintf("%s/thumb/%s/%s/%s/%dpx-%s", COMMONS_BASE, digest[0:1], digest[0:2], enc, width, enc)
}
