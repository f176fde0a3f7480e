package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BuildPaginationURL copies params onto baseURL with page and limit replaced.
func BuildPaginationURL(baseURL string, page, limit int, params url.Values) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := url.Values{}
	for key, values := range params {
		if key != "page" && key != "limit" {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}

// LinkHeader renders RFC 8288 prev/next links for a page of totalPages.
func LinkHeader(baseURL string, page, limit, totalPages int, params url.Values) string {
	var links []string
	if page > 1 {
		links = append(links, fmt.Sprintf(`<%s>; rel="prev"`, BuildPaginationURL(baseURL, page-1, limit, params)))
	}
	if page < totalPages {
		links = append(links, fmt.Sprintf(`<%s>; rel="next"`, BuildPaginationURL(baseURL, page+1, limit, params)))
	}
	return strings.Join(links, ", ")
}
