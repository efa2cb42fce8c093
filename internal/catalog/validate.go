package catalog

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on the built-in variants.
func Validate() error {
	return validateVariants(variants)
}

// validateVariants returns a combined error describing all problems found,
// or nil if every variant is well formed.
func validateVariants(vs []Variant) error {
	var errs []string

	if len(vs) == 0 {
		errs = append(errs, "no variants defined")
	}

	for _, v := range vs {
		if len(v.Rows) == 0 {
			errs = append(errs, fmt.Sprintf("variant %q has no rows", v.Name))
		}
		for i, r := range v.Rows {
			where := fmt.Sprintf("variant %q row %d", v.Name, i+1)

			if r.Connective == nil || r.Category == nil {
				errs = append(errs, where+": missing cell")
				continue
			}

			switch c := r.Connective.(type) {
			case Fixed:
				if _, ok := CategoryOf(c.Value); !ok {
					errs = append(errs, fmt.Sprintf("%s: connective %q is not in the catalog", where, c.Value))
				}
			case Blank:
				errs = append(errs, checkBlank(where+" connective", c)...)
			}

			switch c := r.Category.(type) {
			case Fixed:
				if !IsKnown(Category(c.Value)) {
					errs = append(errs, fmt.Sprintf("%s: unknown category %q", where, c.Value))
				}
			case Blank:
				errs = append(errs, checkBlank(where+" category", c)...)
				for _, a := range c.Accepted {
					if !IsKnown(Category(a)) {
						errs = append(errs, fmt.Sprintf("%s category: accepts unknown category %q", where, a))
					}
				}
			}

			if r.Sentence.Points < 0 {
				errs = append(errs, fmt.Sprintf("%s sentence: negative points %d", where, r.Sentence.Points))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func checkBlank(where string, b Blank) []string {
	var errs []string
	if len(b.Accepted) == 0 {
		errs = append(errs, where+": no accepted answers")
	}
	if b.Points < 0 {
		errs = append(errs, fmt.Sprintf("%s: negative points %d", where, b.Points))
	}
	return errs
}
