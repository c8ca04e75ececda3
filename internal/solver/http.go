package solver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
)

// maxAnswer bounds how much of a response body is read.
const maxAnswer = 64 << 10

// HTTP queries a solver server:
//
//	GET <URL>?U=<9>&R=<9>&F=<9>&D=<9>&L=<9>&B=<9>&max_depth=..&budget=..
//
// and reads the solution from the response body.
type HTTP struct {
	URL    string
	Client *http.Client
}

// Solve implements Solver.
func (h HTTP) Solve(ctx context.Context, facelets string, opts Options) (Solution, error) {
	if h.URL == "" {
		return Solution{}, ErrNoSolver
	}
	return run(ctx, facelets, func(ctx context.Context) (string, error) {
		u, err := url.Parse(h.URL)
		if err != nil {
			return "", fmt.Errorf("parse solver url: %w", err)
		}

		q := u.Query()
		for i := 0; i < 6; i++ {
			q.Set(facelet.Letters[i:i+1], facelets[i*9:(i+1)*9])
		}
		q.Set("max_depth", strconv.Itoa(opts.MaxDepth))
		q.Set("budget", strconv.Itoa(opts.Budget))
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return "", err
		}

		client := h.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswer))
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: %s: %s", facelet.ErrSolveFailed, resp.Status, strings.TrimSpace(string(body)))
		}
		return string(body), nil
	})
}
