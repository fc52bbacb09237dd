package handlers

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventboard/eventboard/internal/domain"
	"github.com/eventboard/eventboard/internal/transport/rest/dto"
)

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidArgumentMeta("invalid path param", map[string]string{
			name: "must be a positive integer",
		})
	}
	return id, nil
}

func queryInt(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			name: "must be an integer",
		})
	}
	return n, nil
}

func queryInt64List(q url.Values, name string) ([]int64, error) {
	var out []int64
	for _, raw := range q[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
					name: "must be a list of integers",
				})
			}
			out = append(out, n)
		}
	}
	return out, nil
}

func queryStringList(q url.Values, name string) []string {
	var out []string
	for _, raw := range q[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryBool(q url.Values, name string) (*bool, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			name: "must be true or false",
		})
	}
	return &b, nil
}

func queryTime(q url.Values, name string) (*time.Time, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := dto.ParseDateTime(v)
	if err != nil {
		return nil, domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			name: "must match " + dto.DateTimeLayout,
		})
	}
	return &t, nil
}

// clientIP returns the caller's address; the RealIP middleware has
// already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
