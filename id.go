package inputmix

// symbolicID is a parsed input id: optional "-" then optional "!" then a body.
type symbolicID struct {
	invertAxis   bool
	invertButton bool
	body         string
}

// parseID splits the invert prefixes off id. The order is fixed: "-!KeyA" sets
// both flags, "!-KeyA" sets only invertButton with body "-KeyA".
func parseID(id string) symbolicID {
	var p symbolicID
	if len(id) > 0 && id[0] == '-' {
		p.invertAxis = true
		id = id[1:]
	}
	if len(id) > 0 && id[0] == '!' {
		p.invertButton = true
		id = id[1:]
	}
	p.body = id
	return p
}
