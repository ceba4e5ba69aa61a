// Package filter compiles expression-language filters over torrents,
// used by the CLI to select which torrents an operation applies to.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/flowbe/go-qbittorrent-api/qbittorrent"
)

// Filter is a compiled filter expression ready for evaluation.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile parses and compiles a filter expression. Expressions see the
// torrent's fields through the Torrent variable plus a set of helper
// functions, e.g.:
//
//	Torrent.Ratio > 1.0 && hasTag("public")
//	isSeeding() && daysSince(added()) > 30
//	sizeGB() > 20 && Torrent.Category == "movies"
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(staticHelpers()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Expression returns the original filter expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match reports whether the torrent satisfies the filter. Evaluation
// errors count as no match.
func (f *Filter) Match(torrent qbittorrent.Torrent) (bool, error) {
	result, err := expr.Run(f.program, environment(torrent))
	if err != nil {
		return false, &EvaluationError{
			Expression:  f.expression,
			TorrentName: torrent.Name,
			Err:         err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression:  f.expression,
			TorrentName: torrent.Name,
			Err:         errNotBoolean,
		}
	}
	return matched, nil
}

// Apply returns the subset of torrents matching the filter, stopping at
// the first evaluation error.
func (f *Filter) Apply(torrents []qbittorrent.Torrent) ([]qbittorrent.Torrent, error) {
	var matches []qbittorrent.Torrent
	for _, t := range torrents {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// staticHelpers are the torrent-independent functions available to
// every expression, used as the compile-time environment.
func staticHelpers() map[string]any {
	return map[string]any{
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// environment binds one torrent's data and per-torrent helpers.
func environment(torrent qbittorrent.Torrent) map[string]any {
	env := staticHelpers()
	env["Torrent"] = torrent
	env["added"] = torrent.Added
	env["sizeGB"] = func() float64 {
		return float64(torrent.Size) / (1 << 30)
	}
	env["isSeeding"] = func() bool {
		return torrent.State.IsSeeding()
	}
	env["isDownloading"] = func() bool {
		return torrent.State.IsDownloading()
	}
	env["isPaused"] = func() bool {
		return torrent.State.IsPaused()
	}
	env["hasTag"] = func(tag string) bool {
		for _, t := range strings.Split(torrent.Tags, ",") {
			if strings.EqualFold(strings.TrimSpace(t), tag) {
				return true
			}
		}
		return false
	}
	return env
}
