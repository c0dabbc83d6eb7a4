package bankhub

import (
	"fmt"
	"net/url"
	"strings"
)

// urlBuilder assembles request URLs. Query parameters are only ever added
// explicitly, so optional filters that the caller left unset never show up
// in the query string.
type urlBuilder struct {
	base       string
	path       string
	pathParams map[string]string
	query      url.Values
}

func newURLBuilder(base string) *urlBuilder {
	return &urlBuilder{
		base:       base,
		pathParams: make(map[string]string),
		query:      url.Values{},
	}
}

// setPath sets the request path, which may contain {name} placeholders
// filled in by setPathParam.
func (b *urlBuilder) setPath(path string) *urlBuilder {
	b.path = path
	return b
}

func (b *urlBuilder) setPathParam(name, value string) *urlBuilder {
	b.pathParams[name] = url.PathEscape(value)
	return b
}

func (b *urlBuilder) addQueryParam(key string, value any) *urlBuilder {
	b.query.Add(key, fmt.Sprint(value))
	return b
}

func (b *urlBuilder) build() string {
	path := b.path
	for name, value := range b.pathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}
	u := b.base + path
	if len(b.query) > 0 {
		u += "?" + b.query.Encode()
	}
	return u
}
