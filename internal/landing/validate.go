package landing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalidDocument is wrapped by every error returned from Validate.
var ErrInvalidDocument = errors.New("invalid landing document")

// Validate checks every link entry and reports all problems at once.
// Each problem names the offending field path, e.g. "lists.firstList[2].link".
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	var errs error
	errs = multierr.Append(errs, validateEntries("lists.firstList", d.Lists.FirstList))
	errs = multierr.Append(errs, validateEntries("lists.secondList", d.Lists.SecondList))
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, errs)
	}
	return nil
}

func validateEntries(path string, entries []LinkEntry) error {
	var errs error
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", path, i)
		if strings.TrimSpace(e.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s.name: must not be empty", field))
		}
		if err := ValidateLink(e.Link); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s.link: %w", field, err))
		}
	}
	return errs
}

// ValidateLink accepts an absolute URL (scheme and host) or a site-relative path.
func ValidateLink(link string) error {
	if strings.TrimSpace(link) == "" {
		return errors.New("must not be empty")
	}
	if link != strings.TrimSpace(link) {
		return fmt.Errorf("%q has surrounding whitespace", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%q is not a valid URL or path: %w", link, err)
	}

	switch {
	case u.Scheme != "" && u.Host != "":
		return nil
	case u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/"):
		return nil
	case u.Scheme != "":
		return fmt.Errorf("%q has a scheme but no host", link)
	default:
		// Covers "//host/path" and bare relative paths like "map/".
		return fmt.Errorf("%q is neither an absolute URL nor a site-relative path", link)
	}
}
