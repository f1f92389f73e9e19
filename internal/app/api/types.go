package api

import (
	"net/url"
	"strconv"
)

type links struct {
	Self  *string `json:"self,omitempty"`
	First *string `json:"first,omitempty"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  *string `json:"last,omitempty"`
}

func createLinks(u *url.URL, count, total, offset, limit int64) *links {
	if total == 0 || count == total {
		return nil
	}

	query := u.Query()

	newUrl := func(offset int64) *string {
		query.Set("offset", strconv.Itoa(int(offset)))
		u.RawQuery = query.Encode()
		u_ := u.String()
		return &u_
	}

	if limit <= 0 {
		limit = 10
	}

	first := int64(0)
	last := ((total - 1) / limit) * limit
	next := offset + limit
	prev := offset - limit

	links := &links{
		Self:  newUrl(offset),
		First: newUrl(first),
		Last:  newUrl(last),
	}

	if next < total {
		links.Next = newUrl(next)
	}

	if prev >= 0 {
		links.Prev = newUrl(prev)
	}

	return links
}
