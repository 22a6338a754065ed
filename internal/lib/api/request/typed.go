package request

import (
	"context"
	"fmt"
)

// JSON performs the call and decodes a JSON result into T. An empty result
// yields the zero T.
func JSON[T any](ctx context.Context, c *Client, method, url string, body any) (T, error) {
	var out T

	res, err := c.Do(ctx, method, url, &Options{Body: body})
	if err != nil {
		return out, err
	}

	switch res.Kind() {
	case KindEmpty:
		return out, nil
	case KindJSON:
		if err := res.Decode(&out); err != nil {
			return out, fmt.Errorf("decode %s %s: %w", method, url, err)
		}
		return out, nil
	default:
		return out, fmt.Errorf("%s %s answered %s: %w", method, url, res.Kind(), ErrUnexpectedContent)
	}
}

// Bool accepts both a bare true/false text body and a JSON boolean.
func Bool(ctx context.Context, c *Client, method, url string, body any) (bool, error) {
	res, err := c.Do(ctx, method, url, &Options{Body: body})
	if err != nil {
		return false, err
	}

	switch res.Kind() {
	case KindBool:
		v, _ := res.Bool()
		return v, nil
	case KindJSON:
		var v bool
		if err := res.Decode(&v); err != nil {
			return false, fmt.Errorf("decode %s %s: %w", method, url, err)
		}
		return v, nil
	default:
		return false, fmt.Errorf("%s %s answered %s: %w", method, url, res.Kind(), ErrUnexpectedContent)
	}
}

// NoContent performs the call and discards whatever successful body comes back.
func NoContent(ctx context.Context, c *Client, method, url string, body any) error {
	_, err := c.Do(ctx, method, url, &Options{Body: body})
	return err
}
