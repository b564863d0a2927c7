package steamworkshop

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParsePublishedFileID parses either a bare published file ID
// or a Steam Workshop URL such as
// https://steamcommunity.com/sharedfiles/filedetails/?id=1730420775.
func ParsePublishedFileID(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("invalid published file ID %d", id)
		}

		return id, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("parse published file ID %q: %w", s, err)
	}

	q := u.Query().Get("id")
	if q == "" {
		return 0, fmt.Errorf("could not find published file ID in %q", s)
	}

	id, err := strconv.ParseInt(q, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse published file ID %q: %w", q, err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("invalid published file ID %d", id)
	}

	return id, nil
}
