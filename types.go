package origin

import "net/url"

// Location is anything exposing a full URL-like href, conventionally the
// current page location.
type Location interface {
	Href() string
}

// Href is a Location backed by a literal href string.
type Href string

// Href implements Location.
func (h Href) Href() string {
	return string(h)
}

// LocationFunc adapts a function to Location. The function is invoked on
// every resolution that needs to inspect the href.
type LocationFunc func() string

// Href implements Location.
func (fn LocationFunc) Href() string {
	if fn == nil {
		return ""
	}
	return fn()
}

// Directive is the recognised value of the override query parameter.
type Directive string

const (
	// DirectiveNone means no override: the parameter is absent or its value is
	// not recognised.
	DirectiveNone Directive = ""
	// DirectiveStage selects and pins the stage admin origin.
	DirectiveStage Directive = "stage"
	// DirectiveReset clears a pinned origin.
	DirectiveReset Directive = "reset"
)

// Source records which branch produced a resolution.
type Source string

const (
	// SourceCache indicates the pinned value was returned and the input ignored.
	SourceCache Source = "cache"
	// SourceOverride indicates a stage directive selected (and pinned) the origin.
	SourceOverride Source = "override"
	// SourceReset indicates a reset directive cleared the cell.
	SourceReset Source = "reset"
	// SourceDefault indicates no override was present.
	SourceDefault Source = "default"
)

// ParseDirective extracts the value of param from href. Malformed hrefs,
// missing query strings and unrecognised values all yield DirectiveNone.
func ParseDirective(href, param string) Directive {
	if href == "" || param == "" {
		return DirectiveNone
	}

	u, err := url.Parse(href)
	if err != nil {
		return DirectiveNone
	}

	switch Directive(u.Query().Get(param)) {
	case DirectiveStage:
		return DirectiveStage
	case DirectiveReset:
		return DirectiveReset
	default:
		return DirectiveNone
	}
}

func hrefOf(loc Location) (href string) {
	if loc == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			href = ""
		}
	}()
	return loc.Href()
}
