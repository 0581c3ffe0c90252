package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Identified is a record carrying a backend primary key.
type Identified interface {
	Identity() int
}

// GetJSON fetches path and decodes the body into a T.
func GetJSON[T any](ctx context.Context, c *Client, path string, q url.Values, token string) (T, error) {
	var out T
	res := c.Do(ctx, http.MethodGet, path, q, nil, token)
	if err := res.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// GetRecord fetches a single record and checks that it carries an identity.
func GetRecord[T Identified](ctx context.Context, c *Client, path, token string) (T, error) {
	rec, err := GetJSON[T](ctx, c, path, nil, token)
	if err != nil {
		return rec, err
	}
	if rec.Identity() == 0 {
		return rec, &Error{Kind: KindTransport, Status: http.StatusOK, Err: fmt.Errorf("%s: record without identity", path)}
	}
	return rec, nil
}

// GetList fetches a collection whose rows carry actions and validates that
// every record has an identity that is unique within the response.
func GetList[T Identified](ctx context.Context, c *Client, path string, q url.Values, token string) ([]T, error) {
	rows, err := GetJSON[[]T](ctx, c, path, q, token)
	if err != nil {
		return nil, err
	}
	if err := ValidateIdentities(rows); err != nil {
		return nil, &Error{Kind: KindTransport, Status: http.StatusOK, Err: fmt.Errorf("%s: %w", path, err)}
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// GetRows fetches a read-only collection, such as a report, whose rows carry
// no actions and so are not required to have an identity.
func GetRows[T any](ctx context.Context, c *Client, path string, q url.Values, token string) ([]T, error) {
	rows, err := GetJSON[[]T](ctx, c, path, q, token)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// ValidateIdentities rejects records without identity and duplicate identities.
func ValidateIdentities[T Identified](rows []T) error {
	seen := make(map[int]struct{}, len(rows))
	for i, row := range rows {
		id := row.Identity()
		if id == 0 {
			return fmt.Errorf("record %d has no identity", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate identity %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Send issues a mutating request and returns its error, if any, together with
// the backend message.
func Send(ctx context.Context, c *Client, method, path string, body any, token string) (string, error) {
	res := c.Do(ctx, method, path, nil, body, token)
	return res.Message, res.AsError()
}
