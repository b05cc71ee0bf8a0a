package extract

// Entities scans for service names, IPv4-shaped addresses, and domain-shaped
// tokens. Matching is shape-only: no octet range checks, no TLD registry.
// Each bundle slice is deduplicated in order of first appearance.
func (e *Engine) Entities(text string) (EntityBundle, error) {
	bundle := EntityBundle{
		Services: []string{},
		IPs:      []string{},
		Domains:  []string{},
	}
	if err := validate(text); err != nil {
		return bundle, err
	}

	for _, rule := range e.lib.Entities {
		matches := dedupe(rule.Pattern.FindAllString(text, -1))
		switch rule.Kind {
		case "service":
			bundle.Services = matches
		case "ip":
			bundle.IPs = matches
		case "domain":
			bundle.Domains = matches
		}
	}
	return bundle, nil
}

func dedupe(matches []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
